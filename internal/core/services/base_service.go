package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct {
	Events portssvc.EventPublisher
}

// GetLogger gets the request-scoped logger from context or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning message with consistent formatting.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// EmitReportGenerated publishes a report-generated event when a publisher is
// configured. Publish failures are logged and swallowed; notification delivery
// must never fail the report itself.
func (s *BaseService) EmitReportGenerated(ctx context.Context, clientID, reportType string, periodStart, periodEnd time.Time) {
	if s.Events == nil {
		return
	}

	event := portssvc.ReportGeneratedEvent{
		ClientID:    clientID,
		ReportType:  reportType,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.Events.PublishReportGenerated(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish report generated event",
			slog.String("client_id", clientID),
			slog.String("report_type", reportType))
	}
}
