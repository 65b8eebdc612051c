package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gl7857/jot/internal/service"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Truncate the file",
	Long:  "Truncate the file to zero bytes. The file is created when it does not exist yet.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Truncate without asking")
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := newCLIContext(ctx, true)
	if err != nil {
		return err
	}
	defer c.Close()

	if !resetForce {
		fmt.Printf("This erases everything in %s. Continue? (y/N): ", c.store.Path())
		var answer string
		_, _ = fmt.Scanln(&answer)
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	logger, err := setupLogging(c.app, "reset")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if err := c.notes.Clear(ctx); err != nil {
		if errors.Is(err, service.ErrStorageBlocked) {
			return fmt.Errorf("storage or permission problem, run 'jot grant' and 'jot check'")
		}
		return fmt.Errorf("failed to clear text: %w", err)
	}

	fmt.Printf("Cleared %s\n", c.store.Path())
	return nil
}
