package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"siteadmin/config"
	"siteadmin/internal/adminapi"
	"siteadmin/internal/models"
	"siteadmin/internal/paginator"
)

func newPagesCmd() *cobra.Command {
	var (
		baseURL   string
		token     string
		query     adminapi.ProjectQuery
		status    string
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List one page of projects from a running admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				if cfg, err := config.LoadConfig(); err == nil {
					baseURL = cfg.APIURL
				}
			}
			if token == "" {
				token = os.Getenv("SITEADMIN_TOKEN")
			}
			query.Status = models.ProjectStatus(status)

			client := adminapi.NewClient(baseURL, &http.Client{Timeout: 15 * time.Second})
			listing, err := client.ListProjects(cmd.Context(), adminapi.Credentials{Token: token}, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range listing.Data {
				fmt.Fprintf(out, "%6d  %-10s  %s\n", p.ID, p.Status, p.Title)
			}

			tokens, err := listing.Window(maxLength)
			if err != nil {
				return err
			}
			current := paginator.Clamp(listing.Page, listing.LastPage())
			parts := make([]string, len(tokens))
			for i, tok := range tokens {
				parts[i] = renderToken(tok, current)
			}
			fmt.Fprintf(out, "%d projects\n", listing.TotalCount)
			return printLinks(out, parts, paginator.NewControls(current, listing.LastPage()))
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "admin API base URL (defaults to API_URL)")
	cmd.Flags().StringVar(&token, "token", "", "bearer token (defaults to SITEADMIN_TOKEN)")
	cmd.Flags().StringVar(&query.Title, "title", "", "filter by title")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().IntVar(&query.Page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&query.PageSize, "page-size", models.DefaultPageSize, "projects per page")
	cmd.Flags().IntVar(&maxLength, "max-length", 7, "visible page slots")
	return cmd
}
