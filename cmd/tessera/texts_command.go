package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tessera/internal/language"
	"tessera/internal/store"
)

func newTextsCommand(ctx *commandContext) *cobra.Command {
	var filter store.TextFilter

	cmd := &cobra.Command{
		Use:   "texts",
		Short: "List ingested texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Language = language.Canonical(filter.Language)

			return ctx.withStore(func(st *store.Store) error {
				texts, err := st.ListTexts(cmd.Context(), filter)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(texts) == 0 {
					fmt.Fprintln(out, "No texts ingested yet")
					return nil
				}

				headers := []string{"URN", "Language", "Author", "Title", "Year", "Tokens"}
				rows := make([][]string, 0, len(texts))
				for _, text := range texts {
					count, err := st.TokenCount(cmd.Context(), text.ID)
					if err != nil {
						return err
					}
					year := ""
					if text.Year != 0 {
						year = strconv.Itoa(text.Year)
					}
					rows = append(rows, []string{
						text.URN,
						language.DisplayName(text.Language),
						text.Author,
						text.Title,
						year,
						strconv.Itoa(count),
					})
				}
				fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{
					alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight,
				}))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.URN, "urn", "", "Filter by URN")
	cmd.Flags().StringVarP(&filter.Language, "language", "l", "", "Filter by language")
	cmd.Flags().StringVar(&filter.Author, "author", "", "Filter by author")
	cmd.Flags().StringVar(&filter.Title, "title", "", "Filter by title")
	return cmd
}
