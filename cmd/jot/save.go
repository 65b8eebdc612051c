package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gl7857/jot/internal/logging"
	"github.com/gl7857/jot/internal/service"
)

var saveMessage string

var saveCmd = &cobra.Command{
	Use:   "save [text...]",
	Short: "Append text to the file",
	Long: `Append text to the file without opening the notepad.
The text comes from -m when given, else from the arguments joined with
spaces, else from stdin, so output of other commands can be piped in.`,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVarP(&saveMessage, "message", "m", "", "Text to append, verbatim")
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := newCLIContext(ctx, true)
	if err != nil {
		return err
	}
	defer c.Close()

	logger, err := setupLogging(c.app, "save")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	text, err := saveText(saveMessage, args, os.Stdin)
	if err != nil {
		return err
	}

	if err := c.notes.Save(ctx, text); err != nil {
		if errors.Is(err, service.ErrStorageBlocked) {
			return fmt.Errorf("storage or permission problem, run 'jot grant' and 'jot check'")
		}
		return fmt.Errorf("failed to save text: %w", err)
	}

	fmt.Printf("Saved %d bytes to %s\n", len(text), c.store.Path())
	return nil
}

// saveText picks the text to append: -m wins, then the arguments joined
// with spaces, then stdin when neither was given.
func saveText(message string, args []string, stdin *os.File) (string, error) {
	if message != "" {
		return message, nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return "", fmt.Errorf("no text given; pass arguments or pipe to stdin")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	logging.Debug("Read %d bytes from stdin", len(data))
	return string(data), nil
}
