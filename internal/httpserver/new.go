package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/middleware"
	"notes-to-tasks/internal/suggestion"
	tgDelivery "notes-to-tasks/internal/suggestion/delivery/telegram"
	"notes-to-tasks/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Suggestion domain
	suggestionUC    suggestion.UseCase
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	RequestsPerMin int

	// Suggestion domain
	SuggestionUC    suggestion.UseCase
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: defaultShutdownTimeout,
		mw:              middleware.New(logger, cfg.RequestsPerMin),
		suggestionUC:    cfg.SuggestionUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.suggestionUC == nil {
		return errors.New("suggestion usecase is required")
	}
	return nil
}
