package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/gl7857/jot/internal/config"
	"github.com/gl7857/jot/internal/journal"
	"github.com/gl7857/jot/internal/permission"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check storage and system requirements",
	Long:  "Verify that the file location, state directory and optional integrations are ready.",
	RunE:  runCheck,
}

// checkResult holds the result of a single check.
type checkResult struct {
	name     string
	ok       bool
	message  string
	required bool
}

// runCheck runs all checks concurrently and prints the results.
func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := newCLIContext(ctx, false)
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Println("jot Storage Check")
	fmt.Println("=================")
	fmt.Println()

	checks := []func() checkResult{
		func() checkResult { return checkStorageRoot(c) },
		func() checkResult { return checkGrant(c) },
		func() checkResult { return checkStateDir(c) },
		func() checkResult { return checkConfig(c) },
		func() checkResult { return checkJournal(ctx, c) },
		func() checkResult { return checkTerminal() },
		func() checkResult { return checkClipboard() },
		func() checkResult { return checkLogFile(c) },
	}

	results := make([]checkResult, len(checks))
	g := new(errgroup.Group)
	for i, check := range checks {
		i, check := i, check
		g.Go(func() error {
			results[i] = check()
			return nil
		})
	}
	_ = g.Wait()

	// Print results
	hasErrors := false
	for _, r := range results {
		printResult(r)
		if r.required && !r.ok {
			hasErrors = true
		}
	}

	fmt.Println()
	if hasErrors {
		fmt.Println("❌ Storage is not ready. Fix the failures above before saving.")
		return fmt.Errorf("storage not ready")
	}
	fmt.Println("✅ Everything jot needs is available.")
	return nil
}

// printResult prints a single check result with appropriate formatting.
func printResult(r checkResult) {
	var icon string
	if r.ok {
		icon = "✅"
	} else if r.required {
		icon = "❌"
	} else {
		icon = "⚠️ "
	}

	optionalSuffix := ""
	if !r.required && !r.ok {
		optionalSuffix = " (optional)"
	}

	fmt.Printf("%s %s: %s%s\n", icon, r.name, r.message, optionalSuffix)
}

// checkStorageRoot verifies the file location exists and is writable.
func checkStorageRoot(c *cliContext) checkResult {
	result := checkResult{name: "storage", required: true}

	if err := c.store.Available(); err != nil {
		result.ok = false
		result.message = err.Error()
		return result
	}

	result.ok = true
	if c.store.Exists() {
		result.message = fmt.Sprintf("%s (%d bytes)", c.store.Path(), c.store.Size())
	} else {
		result.message = fmt.Sprintf("%s (not created yet)", c.store.Path())
	}
	return result
}

// checkGrant reports the storage grant state.
func checkGrant(c *cliContext) checkResult {
	result := checkResult{name: "grant", required: false}

	switch c.grants.State() {
	case permission.StateGranted:
		result.ok = true
		result.message = "granted"
	case permission.StateDenied:
		result.ok = false
		result.message = "denied - run 'jot grant' to enable saving"
	default:
		result.ok = false
		result.message = "not asked yet - run 'jot grant' or allow on first start"
	}
	return result
}

// checkStateDir verifies the state directory is writable.
func checkStateDir(c *cliContext) checkResult {
	result := checkResult{name: "state dir", required: true}

	probe, err := os.CreateTemp(c.app.StateDir, ".check-*")
	if err != nil {
		result.ok = false
		result.message = fmt.Sprintf("not writable: %v", err)
		return result
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	result.ok = true
	result.message = c.app.StateDir
	return result
}

// checkConfig verifies the config file parses when one exists.
func checkConfig(c *cliContext) checkResult {
	result := checkResult{name: "config", required: false}

	if !config.Exists(c.app.StateDir) {
		result.ok = true
		result.message = "no config file, defaults in use"
		return result
	}

	cfg, err := config.Load(c.app.StateDir)
	if err != nil {
		result.ok = false
		result.message = fmt.Sprintf("cannot read: %v", err)
		return result
	}

	result.ok = true
	result.message = fmt.Sprintf("%s (file: %s, theme: %s)", c.app.GetConfigPath(), cfg.FileName, cfg.Theme)
	return result
}

// checkJournal verifies the operation journal can be opened.
func checkJournal(ctx context.Context, c *cliContext) checkResult {
	result := checkResult{name: "journal", required: false}

	jnl, err := journal.Open(ctx, c.app.GetJournalPath())
	if err != nil {
		result.ok = false
		result.message = fmt.Sprintf("cannot open: %v", err)
		return result
	}
	defer func() { _ = jnl.Close() }()

	count, err := jnl.Count(ctx)
	if err != nil {
		result.ok = false
		result.message = fmt.Sprintf("cannot query: %v", err)
		return result
	}

	result.ok = true
	result.message = fmt.Sprintf("%d operations recorded", count)
	return result
}

// checkTerminal reports whether the interactive screen can run here.
func checkTerminal() checkResult {
	result := checkResult{name: "terminal", required: false}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		result.ok = false
		result.message = "stdout is not a terminal, subcommands still work"
		return result
	}

	result.ok = true
	result.message = "interactive screen available"
	return result
}

// checkClipboard reports whether copy to clipboard is available.
func checkClipboard() checkResult {
	result := checkResult{name: "clipboard", required: false}

	if clipboard.Unsupported {
		result.ok = false
		result.message = "not supported on this system"
		return result
	}

	result.ok = true
	result.message = "available"
	return result
}

// checkLogFile verifies the log file can be appended to.
func checkLogFile(c *cliContext) checkResult {
	result := checkResult{name: "log file", required: false}

	logPath := c.app.GetLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		result.ok = false
		result.message = fmt.Sprintf("not writable: %v", err)
		return result
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		result.ok = false
		result.message = fmt.Sprintf("not writable: %v", err)
		return result
	}
	_ = file.Close()

	result.ok = true
	result.message = logPath
	return result
}
