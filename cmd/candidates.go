package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/listview"
	"github.com/candidate-pool/poolctl/internal/poolapi"
	"github.com/candidate-pool/poolctl/internal/validate"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Browse and manage pool candidates",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates page by page",
	RunE: func(cmd *cobra.Command, _ []string) error {
		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		loc, err := seedLocation(cmd, config, newViewStore(config))
		if err != nil {
			return err
		}

		ctrl := listview.NewController(newCodec(config), loc, client.ListCandidates, l)
		if err := ctrl.Mount(cmd.Context()); err != nil {
			return describeFailure(err, client.BaseURL())
		}

		candidateTable(ctrl.Rows())

		printQuery, _ := cmd.Flags().GetBool("print-query")
		printListFooter(ctrl, loc, printQuery)
		return nil
	},
}

var candidatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one candidate record as stored, full nested shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		record, err := client.GetCandidate(cmd.Context(), id)
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		return printRecordJSON(record.Raw)
	},
}

var candidatesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a candidate from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("file")

		var record poolapi.Candidate
		if err := loadRecord(file, &record); err != nil {
			return err
		}

		if issues := validate.Candidate(&record); len(issues) > 0 {
			return reportIssues(issues)
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		created, err := client.CreateCandidate(cmd.Context(), &record)
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("candidate %d (%s) created\n", created.ID, created.FullName)
		return nil
	},
}

var candidatesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a candidate with a JSON draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")

		var record poolapi.Candidate
		if err := loadRecord(file, &record); err != nil {
			return err
		}

		if issues := validate.Candidate(&record); len(issues) > 0 {
			return reportIssues(issues)
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		updated, err := client.UpdateCandidate(cmd.Context(), id, &record)
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("candidate %d (%s) updated\n", updated.ID, updated.FullName)
		return nil
	},
}

var candidatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a candidate from the pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		ok, err := confirm(fmt.Sprintf("Delete candidate %d?", id), yes)
		if err != nil || !ok {
			return err
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		if err := client.DeleteCandidate(cmd.Context(), id); err != nil {
			l.Warn("delete failed, the pool is unchanged", zap.Int("id", id), zap.Error(err))
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("candidate %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	addListFlags(candidatesListCmd)

	candidatesCreateCmd.Flags().StringP("file", "f", "-", "JSON record draft, - for stdin")
	candidatesUpdateCmd.Flags().StringP("file", "f", "-", "JSON record draft, - for stdin")
	candidatesDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	candidatesCmd.AddCommand(
		candidatesListCmd,
		candidatesGetCmd,
		candidatesCreateCmd,
		candidatesUpdateCmd,
		candidatesDeleteCmd,
		candidatesImportCmd,
	)
}

func candidateTable(rows []poolapi.CandidateRow) {
	header := []string{"ID", "NAME", "EMAIL", "POSITION", "COMPANY", "YEARS", "SKILLS"}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Email,
			r.Position,
			r.Company,
			strconv.Itoa(r.Years),
			r.Skills,
		})
	}

	printTable(header, out)
}
