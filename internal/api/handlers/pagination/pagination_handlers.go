package pagination

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/lib/response"
	"siteadmin/internal/lib/validation"
	"siteadmin/internal/paginator"
)

type PaginationHandlers struct {
	defaultMaxLength int
}

func NewPaginationHandlers(defaultMaxLength int) *PaginationHandlers {
	return &PaginationHandlers{defaultMaxLength: defaultMaxLength}
}

// windowQuery bounds maxLength so one request cannot ask for an unbounded
// token list. The page range itself is checked by the paginator.
type windowQuery struct {
	Current   int `query:"current"`
	Last      int `query:"last"`
	MaxLength int `query:"maxLength" validate:"max=100"`
}

type windowResponse struct {
	Tokens   []paginator.Token `json:"tokens"`
	Previous paginator.Step    `json:"previous"`
	Next     paginator.Step    `json:"next"`
}

// @Summary Compute paginator links
// @Description Returns the page tokens for a paginator control. Gaps are encoded as "…".
// @Tags pagination
// @Produce json
// @Param current query int true "Current page"
// @Param last query int true "Last page"
// @Param maxLength query int false "Visible page slots" maximum(100)
// @Success 200 {object} windowResponse
// @Failure 400 {string} string "Bad Request"
// @Router /pagination [get]
func (h *PaginationHandlers) WindowHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("WindowHandler called")

	queryParams := r.URL.Query()
	current, err := strconv.Atoi(queryParams.Get("current"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid current page")
		return
	}
	last, err := strconv.Atoi(queryParams.Get("last"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid last page")
		return
	}
	maxLength := h.defaultMaxLength
	if raw := queryParams.Get("maxLength"); raw != "" {
		if maxLength, err = strconv.Atoi(raw); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid max length")
			return
		}
	}

	query := windowQuery{Current: current, Last: last, MaxLength: maxLength}
	fields, err := validation.Struct(query)
	if err != nil {
		utils.Logger.Error("WindowHandler - validation failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to compute pagination")
		return
	}
	if fields != nil {
		utils.Logger.Warn("WindowHandler - invalid query", zap.Any("fields", fields))
		response.ValidationError(w, "Invalid query parameters", fields)
		return
	}

	tokens, err := paginator.Window(query.Current, query.Last, query.MaxLength)
	if err != nil {
		var rangeErr *paginator.InvalidRangeError
		if errors.As(err, &rangeErr) {
			utils.Logger.Warn("WindowHandler - invalid range", zap.Error(err))
			response.Error(w, http.StatusBadRequest, rangeErr.Error())
			return
		}
		utils.Logger.Error("WindowHandler - paginator.Window failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to compute pagination")
		return
	}

	controls := paginator.NewControls(query.Current, query.Last)
	response.JSON(w, http.StatusOK, windowResponse{
		Tokens:   tokens,
		Previous: controls.Previous,
		Next:     controls.Next,
	})
}
