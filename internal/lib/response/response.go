package response

import (
	"encoding/json"
	"net/http"

	"siteadmin/internal/lib/logger/utils"

	"go.uber.org/zap"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		utils.Logger.Error("response.JSON - encode failed", zap.Error(err))
	}
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	type errResponse struct {
		Error string `json:"error"`
	}
	JSON(w, statusCode, errResponse{Error: message})
}

// ValidationError answers 400 with one message per rejected field.
func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	type validationResponse struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	JSON(w, http.StatusBadRequest, validationResponse{Error: message, Fields: fields})
}
