package cli

import (
	"context"
	"fmt"

	"github.com/mchmarny/evs/pkg/score"
	urfave "github.com/urfave/cli/v3"
)

func newWeightsCmd() *urfave.Command {
	return &urfave.Command{
		Name:            "weights",
		Usage:           "List the score categories and their weights",
		UsageText:       `evs weights --format yaml`,
		HideHelpCommand: true,
		Action:          cmdWeights,
	}
}

func cmdWeights(_ context.Context, c *urfave.Command) error {
	cats := score.Categories()
	w := c.Root().Writer

	format := outputFormat(c)
	if format != formatText {
		if err := encode(w, format, cats); err != nil {
			return fmt.Errorf("error encoding weights: %w", err)
		}
		return nil
	}

	for _, cat := range cats {
		if _, err := fmt.Fprintf(w, "%-22s %.2f\n", cat.Name, cat.Weight); err != nil {
			return fmt.Errorf("error writing weights: %w", err)
		}
	}

	return nil
}
