package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/txtpad/internal/commands"
	"github.com/hay-kot/txtpad/internal/core/config"
	"github.com/hay-kot/txtpad/internal/core/logging"
	"github.com/hay-kot/txtpad/internal/core/styles"
	"github.com/hay-kot/txtpad/internal/tui"
	"github.com/hay-kot/txtpad/pkg/logutils"
	"github.com/hay-kot/txtpad/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		deferredLog *utils.DeferredWriter
	)

	flags := &commands.Flags{}
	build := buildInfo()

	app := &cli.Command{
		Name:      "txtpad",
		Usage:     "A minimal plain-text editor for the terminal",
		UsageText: "txtpad [global options] [file]",
		Description: `txtpad edits one plain-text document at a time.

ctrl+n starts a new document, ctrl+o opens a file, ctrl+s saves it to your
downloads directory, f1 lists the shortcuts and ctrl+q quits. You are asked
before unsaved changes would be lost.

Run 'txtpad notes.txt' to open a file on start.`,
		Version: build.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TXTPAD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty holds logs until exit, then prints them to stderr)",
				Sources:     cli.EnvVars("TXTPAD_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TXTPAD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "download-dir",
				Usage:       "directory saved documents are written to (overrides config)",
				Sources:     cli.EnvVars("TXTPAD_DOWNLOAD_DIR"),
				Destination: &flags.DownloadDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var (
				logger zerolog.Logger
				err    error
			)
			if flags.LogFile == "" {
				// The editor owns the terminal; print logs once it is gone.
				deferredLog = &utils.DeferredWriter{Limit: 1 << 20}
				logger, err = logutils.NewConsole(flags.LogLevel, deferredLog)
			} else {
				logger, logCloser, err = logutils.New(flags.LogLevel, flags.LogFile)
			}
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logging.Install(logger)

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.DownloadDir != "" {
				cfg.DownloadDir = flags.DownloadDir
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --download-dir: %w", err)
				}
			}

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			flags.Config = cfg

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("download_dir", cfg.DownloadDir).
				Str("version", build.Version).
				Msg("starting")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			if deferredLog != nil {
				return deferredLog.Flush(os.Stderr)
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, build)

	app = commands.NewShortcutsCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// The editor is the default action; its only argument is the file to open.
	app.ArgsUsage = "[file]"
	app.Action = tuiCmd.Run

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
