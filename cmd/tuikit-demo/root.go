package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	hostTcell = "tcell"
	hostTea   = "tea"
)

type rootFlags struct {
	host     string
	theme    string
	logFile  string
	logLevel string
	bell     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tuikit-demo",
		Short:         "Interactive showcase of the tuikit widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.host {
			case hostTcell, hostTea:
				return nil
			default:
				return fmt.Errorf("unknown host %q (want %s or %s)", flags.host, hostTcell, hostTea)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flags.host, "host", hostTcell, "Terminal host: tcell or tea")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "YAML theme file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file; logging is off when empty")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().BoolVar(&flags.bell, "bell", false, "Ring an audible bell on rejected input")

	cmd.AddCommand(newSceneCmd(flags, "gauge", "Gauges with thresholds and render modes", buildGaugeScene))
	cmd.AddCommand(newSceneCmd(flags, "list", "Searchable list, dropdown and radio group", buildListScene))
	cmd.AddCommand(newSceneCmd(flags, "chart", "Bar chart, line chart and sparkline", buildChartScene))

	return cmd
}

func newSceneCmd(flags *rootFlags, name, short string, build sceneFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.Context(), flags, build)
		},
	}
}
