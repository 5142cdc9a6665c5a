package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/engine"
)

func newCompareCmd() *cobra.Command {
	var (
		words    wordOpts
		settings settingsOpts
	)

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Compare layout settings on the same words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			env := envFromContext(ctx)

			list, base, err := loadWords(args, words, env, logger)
			if err != nil {
				return err
			}
			base, err = resolveSettings(cmd, base, settings, env)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			results, err := engine.CompareScenarios(ctx, engine.BuildDefaultScenarios(base), list)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

			printComparison(cmd.OutOrStdout(), results)
			return nil
		},
	}

	addWordFlags(cmd, &words)
	addSettingsFlags(cmd, &settings)
	return cmd
}

func printComparison(w io.Writer, results []engine.ComparisonResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.Scenario.Name, "-", "-", "-", "-", "-", r.Err.Error()})
			continue
		}
		rows = append(rows, []string{
			r.Scenario.Name,
			strconv.Itoa(len(r.Result.Placements)),
			fmt.Sprintf("%dx%d", r.BoundingBox.Size.Width, r.BoundingBox.Size.Height),
			fmt.Sprintf("%.3f", r.Circularity),
			fmt.Sprintf("%.3f", r.FillRatio),
			strconv.Itoa(r.SpiralSteps),
			"",
		})
	}
	fmt.Fprintln(w, StyleTitle.Render("Scenario comparison"))
	fmt.Fprintln(w, renderTable(
		[]string{"Scenario", "Placed", "Box", "Circularity", "Fill", "Steps", "Error"}, rows))
}
