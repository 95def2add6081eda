package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show dashboard data from a running server",
	}

	showCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Long:  `Display totals and averages over the whole daily series.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			stats, err := c.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			renderStats(cmd.OutOrStdout(), stats)
			return nil
		},
	})

	showCmd.AddCommand(&cobra.Command{
		Use:   "trends",
		Short: "Show weekly trends",
		Long:  `Display the daily series rolled up into consecutive seven-day windows.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			rollups, err := c.GetTrends(cmd.Context())
			if err != nil {
				return err
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), rollups)
			}
			renderTrends(cmd.OutOrStdout(), rollups)
			return nil
		},
	})

	showCmd.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Show the daily series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			metrics, err := c.GetDaily(cmd.Context())
			if err != nil {
				return err
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), metrics)
			}
			renderDaily(cmd.OutOrStdout(), metrics)
			return nil
		},
	})

	showCmd.AddCommand(&cobra.Command{
		Use:   "governance",
		Short: "Show governance policies, compliance and cost controls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			snapshot, err := c.GetGovernance(cmd.Context())
			if err != nil {
				return err
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), snapshot)
			}
			renderGovernance(cmd.OutOrStdout(), snapshot)
			return nil
		},
	})

	return showCmd
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(opts)
			if err != nil {
				return err
			}
			status, err := c.HealthCheck(cmd.Context())
			if status != nil {
				if opts.outputJSON {
					if werr := writeJSON(cmd.OutOrStdout(), status); werr != nil {
						return werr
					}
				} else {
					renderHealth(cmd.OutOrStdout(), status)
				}
			}
			return err
		},
	}
}

var (
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
	red    = color.New(color.FgHiRed).SprintFunc()
)
