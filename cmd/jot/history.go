package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gl7857/jot/internal/constants"
	"github.com/gl7857/jot/internal/fileutil"
	"github.com/gl7857/jot/internal/journal"
)

var (
	historyLimit int
	historyOp    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded file operations",
	Long:  "List past appends and clears from the operation journal, newest first.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Limit number of operations shown")
	historyCmd.Flags().StringVar(&historyOp, "op", "", "Filter by operation (append or clear)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyOp != "" && historyOp != constants.OpAppend && historyOp != constants.OpClear {
		return fmt.Errorf("invalid --op value: %s (want %s or %s)", historyOp, constants.OpAppend, constants.OpClear)
	}

	ctx := context.Background()
	c, err := newCLIContext(ctx, false)
	if err != nil {
		return err
	}
	defer c.Close()

	journalPath := c.app.GetJournalPath()
	if !fileutil.Exists(journalPath) {
		fmt.Println("No operations recorded yet")
		return nil
	}

	jnl, err := journal.Open(ctx, journalPath)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = jnl.Close() }()

	var ops []*journal.Operation
	if historyOp != "" {
		ops, err = jnl.RecentByOp(ctx, historyOp, historyLimit)
	} else {
		ops, err = jnl.Recent(ctx, historyLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	if len(ops) == 0 {
		fmt.Println("No operations recorded yet")
		return nil
	}

	printOperations(ops)
	return nil
}

func printOperations(ops []*journal.Operation) {
	for i, op := range ops {
		line := fmt.Sprintf("%2d. %s  %-6s %6d B  file now %d B",
			i+1,
			op.PerformedAt.Local().Format("2006-01-02 15:04:05"),
			op.Op,
			op.Bytes,
			op.SizeAfter,
		)
		fmt.Println(line)
	}
}
