package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/logging"
	"github.com/hay-kot/txtpad/internal/platform/download"
	"github.com/hay-kot/txtpad/internal/tui"
)

// ErrNotTerminal is returned when the editor is started without a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo

	// isTerminal is swapped in tests.
	isTerminal func() bool
}

// NewTuiCmd creates the editor command. It is the root action.
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Run executes the editor. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 1 {
		return fmt.Errorf("expected at most one file, got %d. Run 'txtpad --help' for usage", c.Args().Len())
	}

	initial := c.Args().First()
	if initial != "" {
		info, err := os.Stat(initial)
		if err != nil {
			return fmt.Errorf("open %s: %w", initial, err)
		}
		if info.IsDir() {
			return fmt.Errorf("open %s: is a directory", initial)
		}
	}

	if !cmd.isTerminal() {
		return ErrNotTerminal
	}

	m := cmd.newModel(ctx, initial)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}

	if fm, ok := final.(tui.Model); ok && fm.Unsaved() {
		log.Warn().Msg("exited with unsaved changes")
	}
	return nil
}

func (cmd *TuiCmd) newModel(ctx context.Context, initial string) tui.Model {
	cfg := cmd.flags.Config

	emitter := download.New(cfg.DownloadDir, download.Options{
		Overwrite: cfg.Download.Overwrite,
		Logger:    logging.Component("download"),
	})

	session := document.NewSession(emitter, document.Options{
		DefaultName:       cfg.DefaultName,
		AbortNewOnDecline: cfg.Editor.AbortNewOnDecline,
		Logger:            logging.Component("document"),
	})

	return tui.New(tui.Options{
		Config:      cfg,
		Session:     session,
		InitialFile: initial,
		Context:     ctx,
		BuildInfo:   cmd.build,
	})
}
