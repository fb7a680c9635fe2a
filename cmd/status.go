package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the pool API is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		if err := client.Health(cmd.Context()); err != nil {
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("pool API at %s is healthy\n", client.BaseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
