package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/evs/pkg/score"
	urfave "github.com/urfave/cli/v3"
)

func cmdScore(_ context.Context, c *urfave.Command) error {
	v := score.Sample()
	slog.Debug("scoring validator", "validators", score.SampleTotalValidators, "model", score.ModelVersion)

	b := score.Explain(v, score.SampleTotalValidators)
	w := c.Root().Writer

	format := outputFormat(c)
	if format == formatText {
		if _, err := fmt.Fprintln(w, score.FormatLine(float64(b.Score))); err != nil {
			return fmt.Errorf("error writing score: %w", err)
		}
		return nil
	}

	if err := encode(w, format, b); err != nil {
		return fmt.Errorf("error encoding score: %w", err)
	}

	return nil
}
