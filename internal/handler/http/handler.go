package http

import (
	"time"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieName is the name of the session cookie issued at login.
	cookieName string

	// sessionTTL bounds the lifetime of the cookie sent to the browser;
	// the authoritative expiry lives in the sessions table.
	sessionTTL time.Duration

	// staticDir is the directory the web client is served from.
	// Empty disables static file serving.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		cookieName: cfg.Session.CookieName,
		sessionTTL: cfg.Session.TTL,
		staticDir:  cfg.Storage.Files.StaticDir,
		logger:     logger,
	}
}
