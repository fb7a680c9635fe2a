package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/listview"
	"github.com/candidate-pool/poolctl/internal/poolapi"
	"github.com/candidate-pool/poolctl/internal/views"
)

const (
	promptNextPage   = "Next page"
	promptPrevPage   = "Previous page"
	promptSearch     = "Search"
	promptPageSize   = "Page size"
	promptOpenRecord = "Open record"
	promptRefresh    = "Refresh"
	promptSaveView   = "Save this view"
	promptQuit       = "Quit"
)

var browseMenu = promptui.Select{
	Label: "Action",
	Items: []string{
		promptNextPage, promptPrevPage, promptSearch, promptPageSize,
		promptOpenRecord, promptRefresh, promptSaveView, promptQuit,
	},
	Size: 8,
}

var browseCmd = &cobra.Command{
	Use:       "browse [candidates|jobs]",
	Short:     "Page through the pool interactively",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"candidates", "jobs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		resource := "candidates"
		if len(args) > 0 {
			resource = args[0]
		}

		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)
		store := newViewStore(config)

		loc, err := seedLocation(cmd, config, store)
		if err != nil {
			return err
		}

		l.Debug("starting browse session", zap.String("resource", resource))

		if resource == "jobs" {
			b := browser[poolapi.JobRow]{
				ctrl:   listview.NewController(newCodec(config), loc, client.ListJobs, l),
				loc:    loc,
				store:  store,
				client: client,
				print:  jobTable,
				open: func(ctx context.Context, id int) error {
					record, err := client.GetJob(ctx, id)
					if err != nil {
						return err
					}
					return printRecordJSON(record.Raw)
				},
			}
			return b.run(cmd.Context())
		}

		b := browser[poolapi.CandidateRow]{
			ctrl:   listview.NewController(newCodec(config), loc, client.ListCandidates, l),
			loc:    loc,
			store:  store,
			client: client,
			print:  candidateTable,
			open: func(ctx context.Context, id int) error {
				record, err := client.GetCandidate(ctx, id)
				if err != nil {
					return err
				}
				return printRecordJSON(record.Raw)
			},
		}
		return b.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	addListFlags(browseCmd)
}

// browser binds one list controller to its terminal rendering. The menu loop
// mirrors the web dashboard: every action mutates the controller, which
// reloads and rewrites the shareable location on its own.
type browser[T any] struct {
	ctrl   *listview.Controller[T]
	loc    *listview.MemLocation
	store  *views.Store
	client *poolapi.Client
	print  func([]T)
	open   func(context.Context, int) error
}

func (b browser[T]) run(ctx context.Context) error {
	if err := b.ctrl.Mount(ctx); err != nil {
		fmt.Println(describeFailure(err, b.client.BaseURL()))
	}

	for {
		b.render()

		_, action, err := browseMenu.Run()
		if err != nil {
			return err
		}

		if action == promptQuit {
			return nil
		}

		if err := b.handle(ctx, action); err != nil {
			// Terminal for this action only; the operator retries from
			// the menu.
			fmt.Println(describeFailure(err, b.client.BaseURL()))
		}
	}
}

func (b browser[T]) handle(ctx context.Context, action string) error {
	switch action {
	case promptNextPage:
		return b.ctrl.SetPage(ctx, b.ctrl.View().Page+1)
	case promptPrevPage:
		return b.ctrl.SetPage(ctx, b.ctrl.View().Page-1)
	case promptSearch:
		terms, err := (&promptui.Prompt{Label: "Search terms (empty clears)"}).Run()
		if err != nil {
			return err
		}
		return b.ctrl.SetQuickFilter(ctx, strings.Fields(terms))
	case promptPageSize:
		raw, err := (&promptui.Prompt{Label: "Rows per page"}).Run()
		if err != nil {
			return err
		}
		size, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || size <= 0 {
			return fmt.Errorf("%q is not a valid page size", raw)
		}
		return b.ctrl.SetPageSize(ctx, size)
	case promptOpenRecord:
		raw, err := (&promptui.Prompt{Label: "Record id"}).Run()
		if err != nil {
			return err
		}
		id, err := parseID(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		return b.open(ctx, id)
	case promptRefresh:
		return b.ctrl.Refresh(ctx)
	case promptSaveView:
		name, err := (&promptui.Prompt{Label: "View name"}).Run()
		if err != nil {
			return err
		}
		if err := b.store.Save(views.SavedView{Name: name, Query: b.loc.Encode()}); err != nil {
			return err
		}
		fmt.Printf("view %q saved to %s\n", strings.TrimSpace(name), b.store.Path())
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func (b browser[T]) render() {
	if b.ctrl.Phase() == listview.PhaseErrored {
		fmt.Println("no rows: the last load failed")
		return
	}

	b.print(b.ctrl.Rows())
	printListFooter(b.ctrl, b.loc, false)
}
