package handler

import (
	"github.com/minhng-dev/taskblog/internal/handler/http"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
