package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurihiro0119/codespaces-dashboard/internal/aggregator"
	"github.com/kurihiro0119/codespaces-dashboard/internal/collector"
	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage/memory"
)

// generated is the JSON document printed by the generate command
type generated struct {
	Dataset domain.DatasetInfo    `json:"dataset"`
	Summary *domain.SummaryStats  `json:"summary"`
	Trends  []domain.WeeklyRollup `json:"trends"`
	Daily   []domain.DailyMetric  `json:"daily"`
}

func newGenerateCmd(opts *options) *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample dataset locally",
		Long: `Generate a sample daily series without a server and print it together
with its summary and weekly trends. A non-zero --seed makes the output reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			dist, err := collector.ParseDistribution(cfg.Distribution)
			if err != nil {
				return err
			}

			now := time.Now()
			if end != "" {
				day, err := domain.ParseDay(end)
				if err != nil {
					return err
				}
				now = day.Time
			}

			coll := collector.NewSampleCollector(collector.WithSeed(cfg.SampleSeed), collector.WithDistribution(dist))
			store, err := memory.NewFromCollector(cmd.Context(), coll, now, cfg.SampleDays)
			if err != nil {
				return err
			}
			defer store.Close()

			agg := aggregator.NewAggregator(store, cfg.HourlyRate)
			out := generated{Dataset: store.Info()}
			if out.Daily, err = agg.DailyMetrics(cmd.Context()); err != nil {
				return err
			}
			if out.Summary, err = agg.Summarize(cmd.Context()); err != nil {
				return err
			}
			if out.Trends, err = agg.WeeklyRollup(cmd.Context()); err != nil {
				return err
			}

			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\nDataset %s (%s distribution, seed %d)\n", out.Dataset.ID, dist, cfg.SampleSeed)
			renderDaily(w, out.Daily)
			renderStats(w, out.Summary)
			renderTrends(w, out.Trends)
			return nil
		},
	}

	cmd.Flags().Uint64("seed", 0, "random seed (0 uses system entropy)")
	cmd.Flags().Int("days", collector.DefaultDays, "number of days to generate")
	cmd.Flags().String("distribution", string(collector.DistributionPoisson), "count distribution (poisson, uniform)")
	cmd.Flags().Float64("rate", aggregator.DefaultHourlyRate, "dollar cost per compute hour")
	cmd.Flags().StringVar(&end, "end", "", "last day of the series (YYYY-MM-DD, default today)")

	return cmd
}
