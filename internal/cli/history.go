package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewsawatzky/themepref/internal/db"
)

var (
	errHistoryUnsupported = errors.New("history requires the sqlite storage backend")
	errHistoryLimit       = errors.New("--limit must be at least 1")
)

func buildHistoryCommand(state *rootState) *cobra.Command {
	limit := 20
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent theme preference changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return errHistoryLimit
			}
			s, err := openSession(cmd, state)
			if err != nil {
				return err
			}
			defer s.Close()

			store, ok := s.backend.(*db.Store)
			if !ok {
				return errHistoryUnsupported
			}
			changes, err := store.ListChanges(s.store.Key(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range changes {
				old := "(unset)"
				if c.OldValue != nil {
					old = *c.OldValue
				}
				fmt.Fprintf(tw, "%s\t%s\t->\t%s\n", c.CreatedAt.Local().Format(time.DateTime), old, c.NewValue)
			}
			return tw.Flush()
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 20, fmt.Sprintf("number of changes to show (1-%d; larger values show %d)", db.MaxChangeLimit, db.MaxChangeLimit))
	return historyCmd
}
