package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"siteadmin/internal/paginator"
)

func newWindowCmd() *cobra.Command {
	var current, last, maxLength int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the paginator links for a page state",
		Example: "  siteadmin window --current 10 --last 20 --max-length 5\n" +
			"  ‹ prev 1 … 9 [10] 11 … 20 next ›",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := paginator.Seq(current, last, maxLength)
			if err != nil {
				return err
			}
			var parts []string
			for tok := range seq {
				parts = append(parts, renderToken(tok, current))
			}
			return printLinks(cmd.OutOrStdout(), parts, paginator.NewControls(current, last))
		},
	}
	cmd.Flags().IntVar(&current, "current", 1, "current page")
	cmd.Flags().IntVar(&last, "last", 1, "last page")
	cmd.Flags().IntVar(&maxLength, "max-length", 7, "visible page slots")
	return cmd
}

func renderToken(tok paginator.Token, current int) string {
	if n, ok := tok.Number(); ok && n == current {
		return "[" + tok.String() + "]"
	}
	return tok.String()
}

func printLinks(w io.Writer, parts []string, controls paginator.Controls) error {
	prev, next := "‹ prev", "next ›"
	if controls.Previous.Disabled {
		prev = "(" + prev + ")"
	}
	if controls.Next.Disabled {
		next = "(" + next + ")"
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", prev, strings.Join(parts, " "), next)
	return err
}
