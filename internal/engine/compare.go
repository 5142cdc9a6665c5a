package engine

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/tagcloud/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.LayoutSettings
}

// ComparisonResult holds the layout result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario    ComparisonScenario
	Result      model.LayoutResult
	BoundingBox model.Rectangle
	Circularity float64
	FillRatio   float64
	SpiralSteps int
	Err         error
}

// CompareScenarios lays out the same words under each scenario and returns
// the results in scenario order. Scenarios run in parallel, each with its
// own Layouter. A scenario whose layout fails keeps its error in Err and the
// others still run. The returned error is non-nil only when ctx is done
// before every scenario has started.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, words []model.Word) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, stats, err := layout(words, scenario.Settings)
			results[i] = ComparisonResult{
				Scenario:    scenario,
				Result:      result,
				BoundingBox: result.BoundingBox(),
				Circularity: result.Circularity(),
				FillRatio:   result.FillRatio(),
				SpiralSteps: stats.SpiralSteps,
				Err:         err,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparing scenarios: %w", err)
	}
	return results, nil
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying the spiral resolution and the word order.
func BuildDefaultScenarios(base model.LayoutSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: flip the placement order
	altOrder := base
	altOrder.SortLargestFirst = !base.SortLargestFirst
	name := "Largest First"
	if base.SortLargestFirst {
		name = "Input Order"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Settings: altOrder})

	// Scenario: coarser and finer spirals
	step := base.AngleStep
	if step <= 0 {
		step = model.DefaultSettings().AngleStep
	}
	coarse := base
	coarse.AngleStep = step * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Coarse Spiral (%d/rev)", stepsPerRevolution(coarse.AngleStep)),
		Settings: coarse,
	})

	fine := base
	fine.AngleStep = step / 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Fine Spiral (%d/rev)", stepsPerRevolution(fine.AngleStep)),
		Settings: fine,
	})

	return scenarios
}

func stepsPerRevolution(angleStep float64) int {
	return int(math.Round(2 * math.Pi / angleStep))
}
