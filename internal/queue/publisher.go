package queue

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultDialTimeout bounds how long a publish may wait on an unreachable
// broker.
const DefaultDialTimeout = 2 * time.Second

// Publisher sends directory events to RabbitMQ.  It dials per publish so a
// broker outage never holds state inside the HTTP server.
type Publisher struct {
    URL         string
    DialTimeout time.Duration
}

// NewPublisher returns a publisher for the given AMQP URL.
func NewPublisher(url string) *Publisher {
    return &Publisher{URL: url, DialTimeout: DefaultDialTimeout}
}

func (p *Publisher) dial() (*amqp.Connection, error) {
    timeout := p.DialTimeout
    if timeout <= 0 {
        timeout = DefaultDialTimeout
    }
    return amqp.DialConfig(p.URL, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(timeout),
    })
}

// Publish sends ev to the directory.events queue as a persistent JSON
// message.  Errors are returned for the caller to log; nothing is logged
// here.
func (p *Publisher) Publish(ctx context.Context, ev DirectoryEvent) error {
    conn, err := p.dial()
    if err != nil {
        return fmt.Errorf("rabbitmq: dial: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("rabbitmq: channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        EventsQueue, // name
        true,        // durable
        false,       // autoDelete
        false,       // exclusive
        false,       // noWait
        nil,         // args
    ); err != nil {
        return fmt.Errorf("rabbitmq: queue declare: %w", err)
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("rabbitmq: marshal event: %w", err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Type:         ev.Type,
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",          // default exchange
        EventsQueue, // routing key = queue name
        false,       // mandatory
        false,       // immediate
        pub,
    ); err != nil {
        return fmt.Errorf("rabbitmq: publish: %w", err)
    }
    return nil
}
