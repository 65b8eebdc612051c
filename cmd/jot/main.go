// Package main provides the entry point for the jot CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gl7857/jot/internal/app"
	"github.com/gl7857/jot/internal/journal"
	"github.com/gl7857/jot/internal/logging"
	"github.com/gl7857/jot/internal/permission"
	"github.com/gl7857/jot/internal/service"
	"github.com/gl7857/jot/internal/storage"
	"github.com/gl7857/jot/internal/tui"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
	// Commit is the git commit hash, set at build time via ldflags
	Commit = "unknown"
)

// versionCommitMap maps released versions to their commits for builds
// installed via go install, where vcs settings are absent.
var versionCommitMap = map[string]string{}

// applyBuildInfo fills Version and Commit from module build info when
// they were not set via ldflags.
func applyBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" {
		v := info.Main.Version
		if v != "" && v != "(devel)" {
			Version = v
		}
	}

	if Commit != "unknown" {
		return
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			Commit = shortCommit(setting.Value)
			return
		}
	}
	if commit, ok := versionCommitMap[Version]; ok {
		Commit = shortCommit(commit)
	}
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "jot - a shared notepad for your terminal",
	Long: `jot keeps one plain text file that every save appends to.
Running jot without arguments opens the interactive notepad.`,
	RunE:         runMain,
	SilenceUsage: true,
}

var showVersion bool

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(revokeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add -v/--version flag to root command
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information")
}

// checkVersionFlag checks if -v flag was passed and prints version if so
func checkVersionFlag() bool {
	if showVersion {
		printVersion()
		return true
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

// printVersion prints the version and commit information
func printVersion() {
	fmt.Printf("jot %s (%s)\n", Version, Commit)
}

// cliContext bundles the app context and services shared by commands.
type cliContext struct {
	app     *app.App
	store   *storage.Store
	grants  *permission.Store
	inputs  *service.InputHistoryService
	journal *journal.Journal
	notes   *service.NotesService
}

// newCLIContext initializes the state directory and wires up services.
// The journal is optional; commands that only read the file skip it.
func newCLIContext(ctx context.Context, withJournal bool) (*cliContext, error) {
	application, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	if err := application.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize state directory: %w", err)
	}
	if err := application.LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := application.NewStore()
	grants := permission.New(application.GetGrantPath())
	inputs := service.NewInputHistoryService(application.StateDir)

	var jnl *journal.Journal
	if withJournal {
		jnl, err = journal.Open(ctx, application.GetJournalPath())
		if err != nil {
			logging.Warn("Failed to open journal: %v", err)
			jnl = nil
		}
	}

	notes := service.NewNotesService(store, grants, jnl, inputs)

	return &cliContext{
		app:     application,
		store:   store,
		grants:  grants,
		inputs:  inputs,
		journal: jnl,
		notes:   notes,
	}, nil
}

func (c *cliContext) Close() {
	if c.journal != nil {
		_ = c.journal.Close()
	}
}

// setupLogging routes the global logger to the state dir log file.
func setupLogging(application *app.App, op string) (logging.Logger, error) {
	logger, err := logging.New(application.GetLogPath(), application.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	logger.SetComponent("cli")
	logger.SetOp(op)
	logging.SetGlobal(logger)
	return logger, nil
}

// runMain is the main entry point, it opens the interactive notepad.
func runMain(cmd *cobra.Command, args []string) error {
	// Check for -v flag first
	if checkVersionFlag() {
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("jot needs a terminal; use 'jot save' or 'jot cat' in scripts")
	}

	ctx := context.Background()
	c, err := newCLIContext(ctx, true)
	if err != nil {
		return err
	}
	defer c.Close()

	logger, err := setupLogging(c.app, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	// Write a commented default config on first run
	if !c.app.HasConfig() {
		if err := c.app.Config.Save(c.app.StateDir); err != nil {
			logging.Warn("Failed to write default config: %v", err)
		} else {
			logging.Info("Wrote default config to %s", c.app.GetConfigPath())
		}
	}

	logging.Log("=== jot start ===")
	logging.Debug("State dir: %s", c.app.StateDir)
	logging.Debug("File: %s", c.store.Path())
	logging.Debug("Grant state: %s", c.grants.State())

	return tui.RunEditor(c.notes, c.store, c.grants, c.inputs, c.app.Config.Theme)
}
