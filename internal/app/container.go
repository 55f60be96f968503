package app

import (
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/nfrund/accountadate/internal/config"
	"github.com/nfrund/accountadate/internal/logging"
	"github.com/nfrund/accountadate/internal/rendering"
	"github.com/nfrund/accountadate/internal/server"
	"github.com/samber/do/v2"
)

// NewInjector registers every application service against cfg. Services are
// built lazily on first invoke.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideLogger)
	do.Provide(i, provideSessionStore)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideServer)

	return i
}

// Server resolves a fully wired server with its routes registered.
func Server(i do.Injector) (*server.Server, error) {
	return do.Invoke[*server.Server](i)
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := logging.New(cfg.LogFormat, cfg.SlogLevel())
	if cfg.GeneratedSecret {
		logger.Warn("SESSION_SECRET not set, using a random secret; cached form values will not survive a restart")
	}
	return logger, nil
}

func provideSessionStore(i do.Injector) (sessions.Store, error) {
	return server.NewSessionStore(do.MustInvoke[*config.Config](i)), nil
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	s := server.New(
		do.MustInvoke[*config.Config](i),
		do.MustInvoke[*slog.Logger](i),
		do.MustInvoke[sessions.Store](i),
		do.MustInvoke[*rendering.UniversalRenderer](i),
	)
	s.RegisterRoutes()
	return s, nil
}
