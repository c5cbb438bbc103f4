// Package stream публикует объединенные записи запусков в Kafka
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Writer пишет одно сообщение на запуск, реализует service.RecordStream
type Writer struct {
	writer *kafkago.Writer
	logger *logrus.Logger
}

// NewWriter создает продюсера для топика записей
func NewWriter(cfg *config.Config, logger *logrus.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish сериализует запуск и пишет его в топик с ключом run id
func (w *Writer) Publish(ctx context.Context, sim *models.Simulation) error {
	msg, err := serializeToMessage(sim)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write record %s to kafka: %w", sim.ID, err)
	}
	w.logger.WithFields(logrus.Fields{
		"topic":  w.writer.Topic,
		"run_id": sim.ID,
	}).Debug("Record published to stream")
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// recordMessage - плоская строка датасета и метаданные запуска
type recordMessage struct {
	RunID uuid.UUID `json:"run_id"`
	models.FlatRecord
	models.IrrigationAdvice
	Sources   models.SourceStatus `json:"sources"`
	Demo      bool                `json:"demo"`
	CreatedAt time.Time           `json:"created_at"`
}

// serializeToMessage превращает запуск в сообщение Kafka
func serializeToMessage(sim *models.Simulation) (kafkago.Message, error) {
	data, err := json.Marshal(recordMessage{
		RunID:            sim.ID,
		FlatRecord:       sim.Record.Flatten(),
		IrrigationAdvice: sim.Irrigation,
		Sources:          sim.Record.Sources,
		Demo:             sim.Query.Demo,
		CreatedAt:        sim.CreatedAt,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize simulation record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(sim.ID.String()),
		Value: data,
		Time:  sim.CreatedAt,
		Headers: []kafkago.Header{
			{Key: "seri_band", Value: []byte(sim.Record.Risk.Band)},
			{Key: "irrigation_score", Value: []byte(strconv.Itoa(sim.Irrigation.Score))},
			{Key: "created_at", Value: []byte(sim.CreatedAt.Format(time.RFC3339))},
		},
	}, nil
}
