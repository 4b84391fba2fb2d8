package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"pricekit/internal/domain/entities"
	"pricekit/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

var ErrMissingKafkaBrokers = errors.New("missing KAFKA_BROKERS")

const defaultScenarioEventsTopic = "pricing-scenarios"

// scenarioEvent is the message body published on scenario writes. Input and
// result payloads travel along so downstream consumers (dashboards, audit)
// need no read-back.
type scenarioEvent struct {
	Type       string            `json:"type"`
	OccurredAt string            `json:"occurred_at"`
	Scenario   entities.Scenario `json:"scenario"`
}

// KafkaScenarioPublisher emits scenario lifecycle events to Kafka.
//
// Wiring is optional: when brokers are not configured the service runs
// without a publisher. Mock mode (SCENARIO_EVENTS_MOCK) logs events instead
// of producing, for local runs without a broker.

type KafkaScenarioPublisher struct {
	writer   *kafka.Writer
	mockMode bool
}

var _ interfaces.IScenarioEventPublisher = (*KafkaScenarioPublisher)(nil)

func NewKafkaScenarioPublisher() (*KafkaScenarioPublisher, error) {
	if isScenarioEventsMockEnabled() {
		log.Printf("[events][kafka] mock mode enabled")
		return &KafkaScenarioPublisher{mockMode: true}, nil
	}

	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, ErrMissingKafkaBrokers
	}

	topic := os.Getenv("SCENARIO_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultScenarioEventsTopic
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	log.Printf("[events][kafka] producer initialized brokers=%s topic=%s", brokers, topic)
	return &KafkaScenarioPublisher{writer: writer}, nil
}

func (p *KafkaScenarioPublisher) Publish(ctx context.Context, eventType string, s entities.Scenario) error {
	evt := scenarioEvent{
		Type:       eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		Scenario:   s,
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	if p.mockMode {
		log.Printf("[events][kafka] mock publish type=%s scenario_id=%s payload_len=%d", eventType, s.ID, len(b))
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(eventType + "-" + s.ID),
		Value: b,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the underlying producer.
func (p *KafkaScenarioPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func isScenarioEventsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SCENARIO_EVENTS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
