package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tessera/internal/corpus"
	"tessera/internal/language"
	"tessera/internal/store"
	"tessera/internal/tokenizer"
)

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var (
		lang     string
		fromFile string
		showAll  bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Preview tokenization without recording anything",
		Long: "Tokenize runs the full pipeline over the given text (or --file) and " +
			"prints the resulting token streams. Nothing is written to the store; " +
			"persisted feature sets are still used for lookup so the preview matches " +
			"what ingest would produce.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			raw, err := tokenizeInput(args, fromFile)
			if err != nil {
				return err
			}

			resolvedLang := language.Canonical(lang)
			if resolvedLang == "" {
				resolvedLang = cfg.Tokenizer.DefaultLanguage
			}

			return ctx.withStore(func(st *store.Store) error {
				session := tokenizer.NewSession(st, featurizers()...)
				result, err := session.Tokenize(cmd.Context(), raw, false, &tokenizer.TextRef{Language: resolvedLang})
				if err != nil {
					return err
				}

				headers := []string{"#", "Token", "Form", "Features", "Count"}
				var rows [][]string
				for _, token := range result.Tokens {
					if token.FeatureSet == nil {
						if showAll {
							rows = append(rows, []string{
								strconv.Itoa(token.Index), strconv.Quote(token.Display), "", "", "",
							})
						}
						continue
					}
					rows = append(rows, []string{
						strconv.Itoa(token.Index),
						token.Display,
						token.FeatureSet.Form,
						formatFeatures(token.FeatureSet.Features),
						strconv.Itoa(token.Frequency.Count),
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}))
				fmt.Fprintf(out, "%d tokens, %d distinct forms, %d feature sets not yet stored\n",
					len(result.Tokens), len(result.Frequencies), len(result.NewFeatureSets))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&lang, "language", "l", "", "Text language (defaults to tokenizer.default_language)")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read the text from a file instead of the argument")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include delimiter tokens in the output")
	return cmd
}

func tokenizeInput(args []string, fromFile string) (string, error) {
	if fromFile != "" {
		if len(args) > 0 {
			return "", errors.New("provide either a text argument or --file, not both")
		}
		file, err := corpus.Load(fromFile)
		if err != nil {
			return "", err
		}
		return file.Raw(), nil
	}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", errors.New("no text to tokenize; pass it as an argument or use --file")
	}
	return args[0], nil
}

func formatFeatures(features tokenizer.FeatureBundle) string {
	if len(features) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(features))
	for _, key := range []string{"form", "orth", "stem", "bare"} {
		if value, ok := features[key]; ok {
			pairs = append(pairs, key+"="+value)
		}
	}
	for key, value := range features {
		switch key {
		case "form", "orth", "stem", "bare":
			continue
		}
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, " ")
}
