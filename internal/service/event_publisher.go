// Package service holds clients for the systems the API talks to besides
// its own store: the payment processor and the event bus.
package service

import (
    "context"
    "encoding/json"
    "fmt"
    "sync"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/segmentio/kafka-go"

    "github.com/iliyamo/parts-store-api/internal/config"
    "github.com/iliyamo/parts-store-api/internal/logger"
    q "github.com/iliyamo/parts-store-api/internal/queue"
)

// EventPublisher sends booking events to the bus.  Publishing is best
// effort: callers log failures and carry on.
type EventPublisher interface {
    PublishBookingEvent(ctx context.Context, ev q.BookingEvent) error
    Close() error
}

// NewEventPublisher builds the publisher selected by cfg.Broker.
func NewEventPublisher(cfg config.EventsConfig) EventPublisher {
    switch cfg.Broker {
    case config.BrokerRabbitMQ:
        return NewRabbitPublisher(cfg.RabbitURL, cfg.Topic)
    case config.BrokerKafka:
        return NewKafkaPublisher(cfg.KafkaBrokers, cfg.Topic, 1024)
    default:
        return NopPublisher{}
    }
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishBookingEvent(context.Context, q.BookingEvent) error { return nil }
func (NopPublisher) Close() error                                           { return nil }

// RabbitPublisher publishes each event as a persistent message on a durable
// queue.  It dials per publish; booking events are rare enough that a
// long-lived connection is not worth the reconnect handling.
type RabbitPublisher struct {
    url   string
    queue string
}

func NewRabbitPublisher(url, queue string) *RabbitPublisher {
    return &RabbitPublisher{url: url, queue: queue}
}

func (p *RabbitPublisher) PublishBookingEvent(ctx context.Context, ev q.BookingEvent) error {
    conn, err := amqp.Dial(p.url)
    if err != nil {
        return fmt.Errorf("rabbitmq dial: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("rabbitmq channel: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("rabbitmq queue declare: %w", err)
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        MessageId:    ev.EventID,
        Type:         ev.Type,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
        return fmt.Errorf("rabbitmq publish: %w", err)
    }
    return nil
}

func (p *RabbitPublisher) Close() error { return nil }

// KafkaPublisher queues events on a buffered inbox drained by one goroutine
// writing to the topic, keyed by booking id so a booking's events stay
// ordered.  Publish never blocks the request: a full inbox drops the event.
type KafkaPublisher struct {
    w       *kafka.Writer
    inbox   chan kafka.Message
    done    chan struct{}
    closeMu sync.RWMutex
    closed  bool
}

func NewKafkaPublisher(brokers []string, topic string, buf int) *KafkaPublisher {
    p := &KafkaPublisher{
        w: &kafka.Writer{
            Addr:         kafka.TCP(brokers...),
            Topic:        topic,
            Balancer:     &kafka.Hash{},
            RequiredAcks: kafka.RequireAll,
        },
        inbox: make(chan kafka.Message, buf),
        done:  make(chan struct{}),
    }
    go p.loop()
    return p
}

func (p *KafkaPublisher) loop() {
    defer close(p.done)
    log := logger.WithComponent("kafka-publisher")
    for m := range p.inbox {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        if err := p.w.WriteMessages(ctx, m); err != nil {
            log.Error("write failed", "error", err, "key", string(m.Key))
        }
        cancel()
    }
    if err := p.w.Close(); err != nil {
        log.Warn("writer close failed", "error", err)
    }
}

func (p *KafkaPublisher) PublishBookingEvent(_ context.Context, ev q.BookingEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }
    msg := kafka.Message{
        Key:   []byte(ev.BookingID),
        Value: body,
        Time:  time.Now(),
        Headers: []kafka.Header{
            {Key: "type", Value: []byte(ev.Type)},
            {Key: "event_id", Value: []byte(ev.EventID)},
        },
    }

    p.closeMu.RLock()
    defer p.closeMu.RUnlock()
    if p.closed {
        return fmt.Errorf("kafka publisher closed")
    }
    select {
    case p.inbox <- msg:
        return nil
    default:
        return fmt.Errorf("kafka publisher inbox full")
    }
}

// Close stops accepting events, flushes what is queued and closes the writer.
func (p *KafkaPublisher) Close() error {
    p.closeMu.Lock()
    if !p.closed {
        p.closed = true
        close(p.inbox)
    }
    p.closeMu.Unlock()
    <-p.done
    return nil
}
