package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the file content",
	Long: `Print the raw file content to stdout. A missing file prints
nothing. Reading does not require a storage grant.`,
	RunE: runCat,
}

func runCat(cmd *cobra.Command, args []string) error {
	c, err := newCLIContext(context.Background(), false)
	if err != nil {
		return err
	}
	defer c.Close()

	data, err := c.store.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Missing file reads as empty
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", c.store.Path(), err)
	}

	fmt.Print(string(data))
	return nil
}
