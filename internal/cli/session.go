package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/contacts/internal/config"
	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/logging"
	"github.com/roach88/contacts/internal/store"
)

// session is the loaded state every command works against.
type session struct {
	cfg     *config.Config
	log     *zap.Logger
	backend store.Backend
	loaded  store.LoadResult
	store   *contact.Store
}

// openSession resolves config, builds the logger, opens the backend and
// loads the contact list.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(config.Source{File: opts.ConfigFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to initialize logger", err)
	}

	backend, err := store.Open(store.Kind(cfg.Backend), cfg.File)
	if err != nil {
		_ = log.Sync()
		return nil, WrapExitError(ExitCommandError, "failed to open contacts store", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := backend.Load(ctx)
	if err != nil {
		backend.Close()
		_ = log.Sync()
		msg := fmt.Sprintf("failed to load contacts (remove or repair %s and re-run)", backend.Path())
		return nil, WrapExitError(ExitCommandError, msg, err)
	}

	log.Debug("contacts loaded",
		zap.String("backend", cfg.Backend),
		zap.String("path", backend.Path()),
		zap.Int("count", len(res.Contacts)),
		zap.Bool("missing", res.Missing))

	return &session{
		cfg:     cfg,
		log:     log,
		backend: backend,
		loaded:  res,
		store:   contact.NewStore(res.Contacts, backend, contact.WithLogger(log)),
	}, nil
}

// Close releases the backend and flushes the logger.
func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		s.log.Error("error closing store", zap.Error(err))
	}
	_ = s.log.Sync()
}
