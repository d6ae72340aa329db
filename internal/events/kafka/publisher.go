package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// ReportEventsTopic carries report-generated events for the notification
// pipeline.
const ReportEventsTopic = "report.generated"

// Publisher publishes domain events to Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given brokers.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    ReportEventsTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

// PublishReportGenerated writes a report-generated event keyed by client ID,
// so all events for one client land on the same partition in order.
func (p *Publisher) PublishReportGenerated(ctx context.Context, event portssvc.ReportGeneratedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling report generated event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ClientID),
		Value: data,
	}); err != nil {
		return fmt.Errorf("writing report generated event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
