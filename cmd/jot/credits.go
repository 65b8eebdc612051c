package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gl7857/jot/internal/embed"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show credits and key bindings",
	RunE: func(_ *cobra.Command, _ []string) error {
		text, err := embed.GetCredits()
		if err != nil {
			return fmt.Errorf("failed to load credits: %w", err)
		}

		fmt.Print(text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}
		return nil
	},
}
