package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/evs/pkg/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	appName = "evs"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	debugFlagName  = "debug"
	formatFlagName = "format"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	app := newApp(os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// newApp builds a fresh command tree for each run.
func newApp(w io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:            appName,
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:           "Computes the Ethereum Validator Score (EVS) for a validator",
		HideHelpCommand: true,
		Writer:          w,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:    debugFlagName,
				Usage:   "Prints verbose logs (optional, default: false)",
				Sources: urfave.EnvVars("EVS_DEBUG"),
			},
			&urfave.StringFlag{
				Name:    formatFlagName,
				Usage:   "Output format [text, json, yaml]",
				Value:   formatText,
				Sources: urfave.EnvVars("EVS_FORMAT"),
			},
		},
		Commands: []*urfave.Command{
			newWeightsCmd(),
		},
		Before: func(ctx context.Context, c *urfave.Command) (context.Context, error) {
			if c.Bool(debugFlagName) {
				initLogging(true)
			}
			return ctx, nil
		},
		Action: cmdScore,
	}
}

func initLogging(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)
}

// outputFormat normalizes the format flag, falling back to text.
func outputFormat(c *urfave.Command) string {
	switch f := strings.ToLower(strings.TrimSpace(c.String(formatFlagName))); f {
	case formatJSON:
		return formatJSON
	case formatYAML, "yml":
		return formatYAML
	case "", formatText:
		return formatText
	default:
		slog.Debug("unknown output format, using text", "format", f)
		return formatText
	}
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		return yaml.NewEncoder(w).Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
