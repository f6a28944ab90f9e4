package commands

import (
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/logger"
	"tableflip.dev/gratitude/pkg/store"
)

// session is everything a command needs to work with the journal.
type session struct {
	Config  store.Config
	Backend store.Backend
	Journal *journal.Journal
	Service *app.Service
	Locale  language.Tag
	Log     *slog.Logger

	flush func()
}

// openSession loads config, sets up logging and opens the journal.
func openSession() (*session, error) {
	cfg := sessionConfig
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}

	log, flush := logger.Init(os.Stderr, logger.Options{
		Level:     cfg.LogLevel(),
		Format:    cfg.LogFormat(),
		SentryDSN: cfg.SentryDSN(),
	})

	backend, err := store.Open(cfg)
	if err != nil {
		flush()
		return nil, err
	}
	log.Debug("journal store opened", "driver", cfg.Driver(), "path", backend.Dir())

	j := journal.Open(backend, journal.WithLogger(log))
	return &session{
		Config:  cfg,
		Backend: backend,
		Journal: j,
		Service: &app.Service{Journal: j},
		Locale:  entry.ParseLocale(cfg.Locale()),
		Log:     log,
		flush:   flush,
	}, nil
}

func (s *session) Close() {
	if err := s.Backend.Close(); err != nil {
		s.Log.Warn("closing journal store", "error", err)
	}
	s.flush()
}

// sessionConfig overrides the loaded config when set.
var sessionConfig store.Config
