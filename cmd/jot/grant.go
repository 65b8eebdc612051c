package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gl7857/jot/internal/logging"
)

var grantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant storage access",
	Long: `Record the storage grant that jot asks for on first start.
Until access is granted every save and reset is refused.`,
	RunE: runGrant,
}

var revokeForget bool

var revokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke storage access",
	Long: `Deny storage access. jot asks again on the next interactive start.
With --forget the recorded decision is removed entirely, as if jot had
never asked.`,
	RunE: runRevoke,
}

func init() {
	revokeCmd.Flags().BoolVar(&revokeForget, "forget", false, "Remove the recorded decision instead of denying")
}

func runGrant(cmd *cobra.Command, args []string) error {
	c, err := newCLIContext(context.Background(), false)
	if err != nil {
		return err
	}
	defer c.Close()

	logger, err := setupLogging(c.app, "grant")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if err := c.grants.Grant(); err != nil {
		return fmt.Errorf("failed to record grant: %w", err)
	}
	logging.Info("Storage access granted via CLI")

	fmt.Printf("Storage access granted for %s\n", c.store.Path())
	return nil
}

func runRevoke(cmd *cobra.Command, args []string) error {
	c, err := newCLIContext(context.Background(), false)
	if err != nil {
		return err
	}
	defer c.Close()

	logger, err := setupLogging(c.app, "revoke")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if revokeForget {
		if err := c.grants.Reset(); err != nil {
			return fmt.Errorf("failed to remove decision: %w", err)
		}
		logging.Info("Storage decision forgotten via CLI")
		fmt.Println("Storage decision forgotten")
		return nil
	}

	if err := c.grants.Deny(); err != nil {
		return fmt.Errorf("failed to record denial: %w", err)
	}
	logging.Info("Storage access revoked via CLI")

	fmt.Println("Storage access revoked")
	return nil
}
