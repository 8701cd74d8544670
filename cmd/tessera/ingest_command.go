package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"tessera/internal/corpus"
	"tessera/internal/language"
	"tessera/internal/store"
	"tessera/internal/tokenizer"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var (
		urn    string
		lang   string
		author string
		title  string
		year   int
	)

	cmd := &cobra.Command{
		Use:   "ingest <path>",
		Short: "Tokenize a text file and record it in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			file, err := corpus.Load(args[0])
			if err != nil {
				return err
			}

			resolvedLang := language.Canonical(lang)
			if resolvedLang == "" {
				resolvedLang = cfg.Tokenizer.DefaultLanguage
			}
			if urn == "" {
				urn = filepath.Base(file.Path)
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire ingest lock: %w", err)
			}
			if !locked {
				return errors.New("another tessera ingest is already running")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("release ingest lock", "error", err)
				}
			}()

			return ctx.withStore(func(st *store.Store) error {
				text := &corpus.Text{
					URN:      urn,
					Language: resolvedLang,
					Author:   strings.TrimSpace(author),
					Title:    strings.TrimSpace(title),
					Year:     year,
					Path:     file.Path,
					Checksum: file.Checksum(),
				}
				if err := st.InsertText(cmd.Context(), text); err != nil {
					if errors.Is(err, store.ErrDuplicateText) {
						return fmt.Errorf("%s is already ingested with identical content", urn)
					}
					return err
				}

				session := tokenizer.NewSession(st, featurizers()...)
				result, err := session.Tokenize(cmd.Context(), file.Raw(), true, text.Ref())
				if err != nil {
					return fmt.Errorf("tokenize %s: %w", urn, err)
				}
				if err := st.SaveRun(cmd.Context(), text.ID, result); err != nil {
					return fmt.Errorf("save run: %w", err)
				}

				logger.Info("ingested text",
					"urn", urn,
					"language", resolvedLang,
					"tokens", len(result.Tokens),
					"forms", len(result.Frequencies),
					"new_feature_sets", len(result.NewFeatureSets))

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Ingested %s (%s)\n", urn, language.DisplayName(resolvedLang))
				fmt.Fprintf(out, "  tokens:           %d\n", len(result.Tokens))
				fmt.Fprintf(out, "  distinct forms:   %d\n", len(result.Frequencies))
				fmt.Fprintf(out, "  new feature sets: %d\n", len(result.NewFeatureSets))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&urn, "urn", "", "Stable identifier for the text (defaults to the file name)")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "Text language (defaults to tokenizer.default_language)")
	cmd.Flags().StringVar(&author, "author", "", "Author attribution")
	cmd.Flags().StringVar(&title, "title", "", "Work title")
	cmd.Flags().IntVar(&year, "year", 0, "Composition year (negative for BCE)")
	return cmd
}
