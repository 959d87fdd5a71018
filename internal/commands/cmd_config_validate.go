package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/txtpad/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "txtpad config validate [options]",
				Description: "Validates the configuration file, checking file names, theme, accept patterns, and paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	issues, err := collectIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := outputJSON(w, issues); err != nil {
			return err
		}
	} else {
		cmd.outputText(w, issues)
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// collectIssues flattens criterio field errors. Any other error is returned
// as is.
func collectIssues(err error) ([]validationIssue, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues, nil
}

func outputJSON(w io.Writer, issues []validationIssue) error {
	out := struct {
		Valid  bool              `json:"valid"`
		Errors []validationIssue `json:"errors,omitempty"`
	}{
		Valid:  len(issues) == 0,
		Errors: issues,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, issues []validationIssue) {
	for _, issue := range issues {
		_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render("✗ "+issue.Field+": "+issue.Message))
	}

	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("✓ Configuration is valid"))
		_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render("  config: "+cmd.flags.ConfigPath))
		_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render("  downloads: "+cmd.flags.Config.DownloadDir))
		return
	}

	_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(issues))))
}
