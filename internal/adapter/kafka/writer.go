package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/aero-bulletin-etl/internal/config"
	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces decoded bulletins to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch publishes the bulletins in one WriteMessages call, keyed by
// bulletin ID so replays of the same bulletin land on the same partition.
func (w *Writer) LoadBatch(ctx context.Context, bulletins []domain.DecodedBulletin) error {
	if len(bulletins) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(bulletins))
	for i := range bulletins {
		msg, err := serializeToMessage(bulletins[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	w.logger.Debug("batch written", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

func serializeToMessage(b domain.DecodedBulletin) (kafkago.Message, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize bulletin %s: %w", b.ID, err)
	}
	headers := []kafkago.Header{{Key: "bulletin_kind", Value: []byte(b.Kind)}}
	if b.Severity != "" {
		headers = append(headers, kafkago.Header{Key: "severity", Value: []byte(b.Severity)})
	}
	headers = append(headers, kafkago.Header{Key: "processed_at", Value: []byte(b.ProcessedAt.Format(time.RFC3339))})
	return kafkago.Message{
		Key:     []byte(b.ID),
		Value:   data,
		Headers: headers,
	}, nil
}
