package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewsawatzky/themepref/internal/config"
	"github.com/matthewsawatzky/themepref/internal/hostenv"
	"github.com/matthewsawatzky/themepref/internal/prefstore"
	"github.com/matthewsawatzky/themepref/internal/storage"
	"github.com/matthewsawatzky/themepref/internal/theme"
)

// session is everything one command invocation needs: config, logger, the
// opened storage backend, the preference store on top of it and the host.
type session struct {
	cfgPath string
	cfg     config.Config
	logger  *slog.Logger
	backend storage.Backend
	store   *prefstore.Store
	host    *hostenv.Host
}

func openSession(cmd *cobra.Command, state *rootState) (*session, error) {
	cfgPath, cfg, err := loadConfig(cmd, state)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	backend, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		logger.Warn("storage unavailable; preference kept in memory", "storage", cfg.Storage, "error", err)
		backend = nil
	}

	s := &session{
		cfgPath: cfgPath,
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		host: hostenv.New(hostenv.Options{
			NonInteractive:     state.nonInteractive,
			TerminalBackground: cfg.TerminalBackground,
			Logger:             logger,
		}),
	}
	var slot prefstore.Storage
	if backend != nil {
		slot = backend
	}
	s.store = prefstore.New(slot, cfg.StorageKey, theme.Preference(cfg.DefaultPreference), prefstore.WithLogger(logger))
	return s, nil
}

func (s *session) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func newLogger(w io.Writer, level string) *slog.Logger {
	handlerLevel := new(slog.LevelVar)
	handlerLevel.Set(parseLogLevel(level))
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: handlerLevel}))
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
