package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/candidate-pool/poolctl/internal/listview"
	"github.com/candidate-pool/poolctl/internal/views"
)

// addListFlags registers the flags shared by the list and browse commands.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "zero-based page to fetch")
	cmd.Flags().Int("page-size", 0, "rows per page")
	cmd.Flags().StringP("search", "s", "", "free-text search terms")
	cmd.Flags().StringP("query", "q", "", "encoded view descriptor, as printed by --print-query")
	cmd.Flags().String("view", "", "name of a saved view to open")
	cmd.Flags().Bool("print-query", false, "print the shareable view descriptor after loading")
}

// seedLocation builds the list location from --query or a saved view, then
// lets the simple flags override individual parts of it.
func seedLocation(cmd *cobra.Command, config *Config, store *views.Store) (*listview.MemLocation, error) {
	raw, _ := cmd.Flags().GetString("query")

	if name, _ := cmd.Flags().GetString("view"); name != "" {
		saved, err := store.Get(name)
		if err != nil {
			return nil, err
		}
		raw = saved.Query
	}

	loc, err := listview.NewMemLocation(raw)
	if err != nil {
		return nil, err
	}

	codec := newCodec(config)

	q, err := loc.Query()
	if err != nil {
		return nil, err
	}

	state, err := codec.Decode(q)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("search") {
		terms, _ := cmd.Flags().GetString("search")
		state.Filter.Quick = strings.Fields(terms)
		state.Page = 0
	}
	if cmd.Flags().Changed("page") {
		page, _ := cmd.Flags().GetInt("page")
		if page < 0 {
			page = 0
		}
		state.Page = page
	}
	if cmd.Flags().Changed("page-size") {
		if size, _ := cmd.Flags().GetInt("page-size"); size > 0 {
			state.PageSize = size
		}
	}

	return loc, loc.Push(codec.Encode(state, q))
}

// listviewLocation parses a raw descriptor and round-trips it through the
// configured codec, so malformed filter or sort blobs fail immediately.
func listviewLocation(config *Config, rawQuery string) (*listview.MemLocation, error) {
	loc, err := listview.NewMemLocation(rawQuery)
	if err != nil {
		return nil, err
	}

	codec := newCodec(config)

	q, err := loc.Query()
	if err != nil {
		return nil, err
	}

	state, err := codec.Decode(q)
	if err != nil {
		return nil, err
	}

	return loc, loc.Push(codec.Encode(state, q))
}

func printTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func printListFooter[T any](ctrl *listview.Controller[T], loc *listview.MemLocation, printQuery bool) {
	view := ctrl.View()
	fmt.Printf("page %d (size %d), about %d records\n", view.Page, view.PageSize, ctrl.Count())

	if printQuery {
		fmt.Printf("query: %s\n", loc.Encode())
	}
}

func printRecordJSON(record any) error {
	pretty, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(pretty))
	return nil
}
