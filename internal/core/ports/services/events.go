package services

import (
	"context"
	"time"
)

// ReportGeneratedEvent is emitted after a report derivation succeeds. The
// notification pipeline (WhatsApp scheduler) consumes these downstream.
type ReportGeneratedEvent struct {
	ClientID    string    `json:"clientID"`
	ReportType  string    `json:"reportType"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// EventPublisher publishes domain events to the message broker. Publishing is
// best-effort from the report services' point of view: a failed publish is
// logged, never surfaced to the report caller.
type EventPublisher interface {
	PublishReportGenerated(ctx context.Context, event ReportGeneratedEvent) error
}
