package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/candidate-pool/poolctl/internal/poolapi"
)

var matchCmd = &cobra.Command{
	Use:   "match <job-id>",
	Short: "List matching candidates for a job, as ranked by the engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, err := parseID(args[0])
		if err != nil {
			return err
		}

		minScore, _ := cmd.Flags().GetFloat64("min-score")
		limit, _ := cmd.Flags().GetInt("limit")

		if minScore < 0 || minScore > 1 {
			return fmt.Errorf("min-score must be between 0 and 1, got %v", minScore)
		}
		if limit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", limit)
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		rows, err := client.FindMatches(cmd.Context(), poolapi.MatchQuery{
			JobID:    jobID,
			MinScore: minScore,
			Limit:    limit,
		})
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			return printRecordJSON(rows)
		}

		matchTable(rows)
		fmt.Printf("%d matches for job %d above %.2f\n", len(rows), jobID, minScore)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Float64("min-score", 0.0, "minimum overall score, 0 to 1")
	matchCmd.Flags().Int("limit", 50, "maximum number of matches")
	matchCmd.Flags().Bool("raw", false, "print raw scores as JSON instead of a table")
}

// matchTable renders rows in engine order with percent-rounded scores.
func matchTable(rows []poolapi.MatchRow) {
	header := []string{"ID", "CANDIDATE", "OVERALL", "SKILLS", "EXPERIENCE", "EDUCATION", "SENIORITY", "SEMANTIC"}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		p := r.Percents()
		out = append(out, []string{
			strconv.Itoa(r.CandidateID),
			r.CandidateName,
			fmt.Sprintf("%d%%", p.Overall),
			fmt.Sprintf("%d%%", p.Skills),
			fmt.Sprintf("%d%%", p.Experience),
			fmt.Sprintf("%d%%", p.Education),
			fmt.Sprintf("%d%%", p.Seniority),
			fmt.Sprintf("%d%%", p.Semantic),
		})
	}

	printTable(header, out)
}
