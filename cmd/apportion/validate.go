package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/source"
)

func newValidateCommand(root *rootOptions) *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the partition and direct-mandate winners of a dataset without apportioning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), root.logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			election, err := source.NewFile(dataPath).LoadElection(cmd.Context())
			if err != nil {
				return err
			}

			if err := apportion.ValidateElection(election); err != nil {
				logger.Error("dataset rejected", "data", dataPath, "error", err)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d states, %d districts, %d parties)\n",
				election.Name, len(election.States), len(election.Districts), len(election.Parties()))

			return err
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "normalized election dataset (YAML or JSON, required)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
