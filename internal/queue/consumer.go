package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/segmentio/kafka-go"

    "github.com/iliyamo/parts-store-api/internal/logger"
)

// BookingLogFile is the file, relative to the log directory, that consumers
// append booking events to.
const BookingLogFile = "booking.log"

// StartRabbitConsumer connects to RabbitMQ, declares the queue (durable) and
// appends every delivered event to the booking log under logDir.  It
// reconnects with exponential backoff and returns only when ctx is done.
// Messages that cannot be handled are rejected without requeue so a bad
// payload cannot spin the loop.
func StartRabbitConsumer(ctx context.Context, url, queueName, logDir string) error {
    log := logger.WithComponent("booking-consumer")
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Warn("failed to dial broker", "error", err, "retry_in", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = consumeLoop(ctx, conn, queueName, logDir)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Warn("consume loop ended; reconnecting", "error", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queueName, logDir string) error {
    log := logger.WithComponent("booking-consumer")
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Warn("set QoS failed", "error", err)
    }
    if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := HandleMessage(logDir, d.Body); err != nil {
                log.Error("handle message failed", "error", err)
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// StartKafkaConsumer reads the topic as part of groupID and appends every
// event to the booking log.  Offsets are committed only after the log line
// is written.  It returns when ctx is done.
func StartKafkaConsumer(ctx context.Context, brokers []string, topic, groupID, logDir string) error {
    log := logger.WithComponent("booking-consumer")
    r := kafka.NewReader(kafka.ReaderConfig{
        Brokers: brokers,
        Topic:   topic,
        GroupID: groupID,
    })
    defer func() { _ = r.Close() }()

    for {
        m, err := r.FetchMessage(ctx)
        if err != nil {
            if ctx.Err() != nil {
                return ctx.Err()
            }
            log.Warn("fetch failed", "error", err)
            if !sleep(ctx, 2*time.Second) {
                return ctx.Err()
            }
            continue
        }
        if err := HandleMessage(logDir, m.Value); err != nil {
            log.Error("handle message failed", "error", err, "offset", m.Offset)
        }
        if err := r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
            log.Warn("commit failed", "error", err)
        }
    }
}

// HandleMessage decodes one event and appends a single human-readable line
// to <logDir>/booking.log.
func HandleMessage(logDir string, body []byte) error {
    var ev BookingEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.Type == "" || ev.BookingID == "" {
        return errors.New("event missing type or booking_id")
    }
    if err := os.MkdirAll(logDir, 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join(logDir, BookingLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    line := fmt.Sprintf("[%s] %s | event_id=%s | booking_id=%s | email=%q | status=%q | transaction_id=%q | actor=%q\n",
        ev.OccurredAt, ev.Type, ev.EventID, ev.BookingID, ev.Email, ev.Status, ev.TransactionID, ev.Actor)
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
