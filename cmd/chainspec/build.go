package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irenemae27/substrate-warmup/pkg/chainspec"
)

func newBuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <profile>",
		Short: "Build a profile's chain specification as JSON",
		Long: `Build derives all identities for the named profile (dev or
local_testnet), assembles its genesis state and writes the chain
specification as JSON to stdout or to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := chainspec.Get(args[0])
			if err != nil {
				return err
			}

			data, err := spec.ToJSON()
			if err != nil {
				return fmt.Errorf("failed to build chain spec: %w", err)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chain spec to %s\n", spec.ID, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the chain spec to this file instead of stdout")

	return cmd
}
