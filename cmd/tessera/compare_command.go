package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tessera/internal/corpus"
	"tessera/internal/similarity"
	"tessera/internal/store"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "compare <urn-a> <urn-b>",
		Short: "Compare two ingested texts by shared vocabulary",
		Long: "Compare builds a frequency vector over each text's normalized forms " +
			"and reports the cosine similarity plus the forms the texts share.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				textA, err := textByURN(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				textB, err := textByURN(cmd.Context(), st, args[1])
				if err != nil {
					return err
				}

				profileA, err := textProfile(cmd.Context(), st, textA)
				if err != nil {
					return err
				}
				profileB, err := textProfile(cmd.Context(), st, textB)
				if err != nil {
					return err
				}

				shared := similarity.Shared(profileA, profileB)
				score := similarity.Cosine(profileA, profileB)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s vs %s\n", textA.Label(), textB.Label())
				fmt.Fprintf(out, "  cosine similarity: %.4f\n", score)
				fmt.Fprintf(out, "  shared forms:      %d (of %d and %d)\n",
					len(shared), profileA.Size(), profileB.Size())

				if len(shared) == 0 {
					return nil
				}
				if limit > 0 && len(shared) > limit {
					shared = shared[:limit]
				}
				rows := make([][]string, 0, len(shared))
				for _, sf := range shared {
					rows = append(rows, []string{sf.Form, strconv.Itoa(sf.CountA), strconv.Itoa(sf.CountB)})
				}
				fmt.Fprintln(out, renderTable(out, []string{"Form", args[0], args[1]}, rows,
					[]columnAlignment{alignLeft, alignRight, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum shared forms to display (0 for all)")
	return cmd
}

func textByURN(ctx context.Context, st *store.Store, urn string) (*corpus.Text, error) {
	texts, err := st.ListTexts(ctx, store.TextFilter{URN: urn})
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no ingested text with URN %q", urn)
	}
	// Multiple rows mean revised content; take the latest ingest.
	return texts[len(texts)-1], nil
}

func textProfile(ctx context.Context, st *store.Store, text *corpus.Text) (*similarity.Profile, error) {
	counts, err := st.FormFrequencies(ctx, text.ID)
	if err != nil {
		return nil, err
	}
	profile := similarity.NewProfile(counts)
	if profile == nil {
		return nil, fmt.Errorf("%s has no recorded tokens", text.URN)
	}
	return profile, nil
}
