package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/output"
)

// Exchange is the topic exchange lifecycle messages are published to.
const Exchange = "events"

var _ output.EventNotifier = (*Publisher)(nil)

// Publisher sends event lifecycle messages to RabbitMQ. Routing keys are the
// output.EventKind values.
type Publisher struct {
	connStr string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(connStr string) *Publisher {
	return &Publisher{connStr: connStr}
}

// Open dials the broker and declares the exchange.
func (p *Publisher) Open() (err error) {
	if p.connStr == "" {
		return fmt.Errorf("connection string required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn, err = amqp.Dial(p.connStr); err != nil {
		return err
	}
	if p.channel, err = p.conn.Channel(); err != nil {
		p.conn.Close()
		return err
	}
	return p.channel.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil)
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Message is the JSON body of a lifecycle message.
type Message struct {
	Kind       string    `json:"kind"`
	EventID    string    `json:"eventId"`
	OwnerID    string    `json:"ownerId"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Location   string    `json:"location"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewMessage(kind output.EventKind, e *entities.Event, at time.Time) Message {
	return Message{
		Kind:       string(kind),
		EventID:    e.ID,
		OwnerID:    e.OwnerID,
		Title:      e.Title,
		Date:       e.Date.String(),
		StartTime:  e.StartTime.String(),
		EndTime:    e.EndTime.String(),
		Location:   e.Location,
		Category:   e.Category,
		Status:     string(e.Status),
		OccurredAt: at.UTC(),
	}
}

func (p *Publisher) Notify(ctx context.Context, kind output.EventKind, event *entities.Event) error {
	body, err := json.Marshal(NewMessage(kind, event, time.Now()))
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return fmt.Errorf("publisher not open")
	}
	return p.channel.Publish(
		Exchange,
		string(kind),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    time.Now(),
			Body:         body,
		})
}
