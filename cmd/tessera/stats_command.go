package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tessera/internal/store"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show token store statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			return ctx.withStore(func(st *store.Store) error {
				stats, err := st.Stats(cmd.Context())
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(stats))
				for _, table := range []string{"texts", "tokens", "feature_sets", "frequencies"} {
					rows = append(rows, []string{table, strconv.Itoa(stats[table])})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Store: %s\n", cfg.DatabasePath())
				fmt.Fprintln(out, renderTable(out, []string{"Table", "Rows"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}
