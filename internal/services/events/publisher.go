package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const queueName = "lablink_events"

// Publisher pushes auth and equipment lifecycle events to RabbitMQ.
// Publishing is best-effort: failures are logged, never surfaced to the
// request that triggered the event.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher() (*Publisher, error) {
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	user := getEnv("RABBITMQ_USER", "guest")
	pass := getEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("Event publisher initialized")
	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishAuthEvent publishes an authentication lifecycle event
func (p *Publisher) PublishAuthEvent(event string, userID uint) {
	p.publish(map[string]interface{}{
		"event":   event,
		"user_id": userID,
	})
}

// PublishEquipmentEvent publishes an equipment lifecycle event
func (p *Publisher) PublishEquipmentEvent(event string, equipmentID uint, status string) {
	p.publish(map[string]interface{}{
		"event":        event,
		"equipment_id": equipmentID,
		"status":       status,
	})
}

func (p *Publisher) publish(message map[string]interface{}) {
	message["timestamp"] = time.Now().Format(time.RFC3339)

	body, err := json.Marshal(message)
	if err != nil {
		logrus.Warnf("Failed to marshal event: %v", err)
		return
	}

	err = p.channel.Publish(
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		logrus.Warnf("Failed to publish event: %v", err)
	}
}

// Close closes the RabbitMQ connection
func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			logrus.Warnf("Error closing channel: %v", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			logrus.Warnf("Error closing connection: %v", err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
