package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/docflow_backend/internal/middleware"
)

// BaseService gives services the request-scoped logger, tagged with the service name.
type BaseService struct {
	component string
}

func newBaseService(component string) BaseService {
	return BaseService{component: component}
}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	l := middleware.GetLoggerFromCtx(ctx)
	if s.component != "" {
		l = l.With(slog.String("component", s.component))
	}
	return l
}

// LogError records a failure together with the error text.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	s.logger(ctx).Error(msg, append([]any{slog.String("error", err.Error())}, attrs...)...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.logger(ctx).Info(msg, attrs...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, attrs ...any) {
	s.logger(ctx).Debug(msg, attrs...)
}
