package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	logsSince string
	logsOp    string
	logsLevel string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show jot logs with filters",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := newCLIContext(context.Background(), false)
		if err != nil {
			return err
		}
		defer c.Close()

		logPath := c.app.GetLogPath()
		file, err := os.Open(logPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No logs yet")
				return nil
			}
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = file.Close() }()

		var sinceTime time.Time
		if logsSince != "" {
			parsed, err := parseSince(logsSince)
			if err != nil {
				return err
			}
			sinceTime = parsed
		}

		levelFilter := strings.ToUpper(strings.TrimSpace(logsLevel))

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := scanner.Text()
			ts, level, op, ok := parseLogLine(line)

			if !sinceTime.IsZero() {
				if !ok || ts.Before(sinceTime) {
					continue
				}
			}

			if levelFilter != "" {
				if !ok || level != levelFilter {
					continue
				}
			}

			if logsOp != "" {
				if op == "" || op != logsOp {
					continue
				}
			}

			fmt.Println(line)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read log file: %w", err)
		}

		return nil
	},
}

func init() {
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since time (duration like 2h or timestamp)")
	logsCmd.Flags().StringVar(&logsOp, "op", "", "Filter logs by operation (save, reset, grant, ...)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter logs by level (DEBUG, INFO, WARN, ERROR)")
}

// parseLogLine splits a "[ts] [LEVEL] [component:op] [caller] msg" line.
func parseLogLine(line string) (time.Time, string, string, bool) {
	trimmed := strings.TrimSpace(line)

	parts := strings.SplitN(trimmed, "] [", 4)
	if len(parts) < 4 {
		return time.Time{}, "", "", false
	}

	tsStr := strings.TrimPrefix(parts[0], "[")
	ts, err := time.ParseInLocation("06-01-02 15:04:05.0", tsStr, time.Local)
	if err != nil {
		return time.Time{}, "", "", false
	}

	level := strings.TrimSpace(parts[1])
	op := extractOpFromContext(parts[2])
	return ts, level, op, true
}

// extractOpFromContext pulls the op out of a "component:op" context.
func extractOpFromContext(context string) string {
	parts := strings.SplitN(context, ":", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
