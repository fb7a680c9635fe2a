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

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings page by page",
	RunE: func(cmd *cobra.Command, _ []string) error {
		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		loc, err := seedLocation(cmd, config, newViewStore(config))
		if err != nil {
			return err
		}

		ctrl := listview.NewController(newCodec(config), loc, client.ListJobs, l)
		if err := ctrl.Mount(cmd.Context()); err != nil {
			return describeFailure(err, client.BaseURL())
		}

		jobTable(ctrl.Rows())

		printQuery, _ := cmd.Flags().GetBool("print-query")
		printListFooter(ctrl, loc, printQuery)
		return nil
	},
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one job posting as stored, full nested shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		record, err := client.GetJob(cmd.Context(), id)
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		return printRecordJSON(record.Raw)
	},
}

// Job create and update are wired into the cli even though the API has no
// endpoint for them: the client answers with a capability error before any
// request is made, and the operator should see that answer, not a silently
// missing command.
var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a job posting from a JSON draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("file")

		var record poolapi.Job
		if err := loadRecord(file, &record); err != nil {
			return err
		}

		if issues := validate.Job(&record); len(issues) > 0 {
			return reportIssues(issues)
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		if _, err := client.CreateJob(cmd.Context(), &record); err != nil {
			return describeFailure(err, client.BaseURL())
		}

		return nil
	},
}

var jobsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a job posting with a JSON draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")

		var record poolapi.Job
		if err := loadRecord(file, &record); err != nil {
			return err
		}

		if issues := validate.Job(&record); len(issues) > 0 {
			return reportIssues(issues)
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		if _, err := client.UpdateJob(cmd.Context(), id, &record); err != nil {
			return describeFailure(err, client.BaseURL())
		}

		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a job posting from the pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		ok, err := confirm(fmt.Sprintf("Delete job %d?", id), yes)
		if err != nil || !ok {
			return err
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		if err := client.DeleteJob(cmd.Context(), id); err != nil {
			l.Warn("delete failed, the pool is unchanged", zap.Int("id", id), zap.Error(err))
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("job %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	addListFlags(jobsListCmd)

	jobsCreateCmd.Flags().StringP("file", "f", "-", "JSON record draft, - for stdin")
	jobsUpdateCmd.Flags().StringP("file", "f", "-", "JSON record draft, - for stdin")
	jobsDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	jobsCmd.AddCommand(
		jobsListCmd,
		jobsGetCmd,
		jobsCreateCmd,
		jobsUpdateCmd,
		jobsDeleteCmd,
	)
}

func jobTable(rows []poolapi.JobRow) {
	header := []string{"ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "SENIORITY", "SKILLS"}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.ID),
			r.Title,
			r.Company,
			r.Location,
			r.Employment,
			r.Seniority,
			r.Skills,
		})
	}

	printTable(header, out)
}
