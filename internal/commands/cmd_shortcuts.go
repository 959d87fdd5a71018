package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/tui/components"
)

const defaultRenderWidth = 80

type ShortcutsCmd struct {
	flags  *Flags
	format string
}

// NewShortcutsCmd creates a new shortcuts command.
func NewShortcutsCmd(flags *Flags) *ShortcutsCmd {
	return &ShortcutsCmd{flags: flags}
}

// Register adds the shortcuts command to the application.
func (cmd *ShortcutsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "shortcuts",
		Usage:       "Print the editor keyboard shortcuts",
		UsageText:   "txtpad shortcuts [options]",
		Description: "Prints the document shortcuts available in the editor.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, markdown, json)",
				Value:       "text",
				Destination: &cmd.format,
				Validator: func(s string) error {
					switch s {
					case "text", "markdown", "json":
						return nil
					}
					return fmt.Errorf("unknown format %q", s)
				},
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShortcutsCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	shortcuts := document.Shortcuts()

	switch cmd.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(shortcuts)
	case "markdown":
		_, err := fmt.Fprint(w, components.ShortcutsMarkdown("Keyboard shortcuts", shortcuts))
		return err
	}

	_, err := fmt.Fprintln(w, components.RenderShortcuts("Keyboard shortcuts", shortcuts, renderWidth()))
	return err
}

func renderWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 120)
	}
	return defaultRenderWidth
}
