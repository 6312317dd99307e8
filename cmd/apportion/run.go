package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/source"
)

type runOptions struct {
	dataPath    string
	configPath  string
	output      string
	metricsFile string
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apportion the seats of an election dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApportion(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataPath, "data", "", "normalized election dataset (YAML or JSON, required)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "output format (text, json, yaml)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runApportion(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	if !validFormat(opts.output) {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), root.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := apportion.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	calcOpts := []apportion.Option{apportion.WithLogger(logger)}

	var registry *prometheus.Registry
	if opts.metricsFile != "" {
		registry = prometheus.NewRegistry()
		calcOpts = append(calcOpts, apportion.WithMetrics(metrics.NewPrometheus(registry, metrics.DefaultNamespace)))
	}

	calc, err := apportion.NewCalculator(cfg, source.NewFile(opts.dataPath), calcOpts...)
	if err != nil {
		return err
	}

	result, runErr := calc.Run(cmd.Context())

	// Failed runs are recorded too.
	if registry != nil {
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	return writeResult(cmd.OutOrStdout(), opts.output, result)
}
