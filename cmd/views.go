package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/candidate-pool/poolctl/internal/views"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved list views",
}

var viewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	RunE: func(cmd *cobra.Command, _ []string) error {
		l := newLogger()
		store := newViewStore(mustConfig(l))

		saved, err := store.List()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(saved))
		for _, view := range saved {
			rows = append(rows, []string{
				view.Name,
				view.SavedAt.Format(time.RFC3339),
				view.Query,
			})
		}

		printTable([]string{"NAME", "SAVED", "QUERY"}, rows)
		return nil
	},
}

var viewsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a view descriptor under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")

		l := newLogger()
		config := mustConfig(l)
		store := newViewStore(config)

		// Round-trip the descriptor through the codec so a typo fails here,
		// not when the view is opened later.
		loc, err := listviewLocation(config, query)
		if err != nil {
			return err
		}

		if err := store.Save(views.SavedView{Name: args[0], Query: loc.Encode()}); err != nil {
			return err
		}

		fmt.Printf("view %q saved to %s\n", args[0], store.Path())
		return nil
	},
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger()
		store := newViewStore(mustConfig(l))

		if err := store.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("view %q deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewsCmd)

	viewsSaveCmd.Flags().StringP("query", "q", "", "encoded view descriptor, as printed by --print-query")

	viewsCmd.AddCommand(viewsListCmd, viewsSaveCmd, viewsDeleteCmd)
}
