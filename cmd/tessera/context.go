package main

import (
	"log/slog"
	"strings"
	"sync"

	"tessera/internal/config"
	"tessera/internal/featurize"
	"tessera/internal/logging"
	"tessera/internal/store"
	"tessera/internal/tokenizer"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	log     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.logOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.New(logging.Options{})
		}
		c.log = logger
	})
	return c.log
}

// withStore opens the token store for the duration of fn.
func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

// featurizers returns the featurizer chain for new sessions: the
// language-specific featurizers plus the orthography-only fallback.
func featurizers() []tokenizer.Featurizer {
	return []tokenizer.Featurizer{
		featurize.Latin{},
		featurize.Greek{},
		featurize.Plain{},
	}
}
