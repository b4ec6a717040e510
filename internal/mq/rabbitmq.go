package mq

// RabbitMQ producer wrapper:
// - connection plus a pool of producer channels sized from config
// - async confirms: publishing does not block on broker ACKs, a background
//   goroutine logs Nacks
// - topology is a single topic exchange for domain events

import (
	"fmt"
	"sync"

	"github.com/venkatesh141/Ecom/config"
	"github.com/venkatesh141/Ecom/pkg/logger"

	"github.com/streadway/amqp"
)

type channelWrapper struct {
	ch       *amqp.Channel
	confirms <-chan amqp.Confirmation
}

// Pool maintains one connection and a set of confirm-mode producer channels.
type Pool struct {
	conn     *amqp.Connection
	channels chan *channelWrapper
	exchange string
	mu       sync.Mutex
	closed   bool
}

// Init dials the broker, declares the events exchange and fills the channel
// pool.
func Init(cfg *config.MQConfig) (*Pool, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq failed: %w", err)
	}
	size := cfg.ChannelPoolSize
	if size <= 0 {
		size = 8
	}

	p := &Pool{conn: conn, channels: make(chan *channelWrapper, size), exchange: cfg.Exchange}
	if err := p.declareExchange(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	for i := 0; i < size; i++ {
		cw, err := p.createChannelWrapper()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("open channel failed: %w", err)
		}
		p.channels <- cw
	}
	logger.Info("MQ producer channel pool initialized", "size", size, "exchange", cfg.Exchange)
	return p, nil
}

func (p *Pool) declareExchange() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil)
}

func (p *Pool) createChannelWrapper() (*channelWrapper, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable confirm failed: %w", err)
	}

	conf := ch.NotifyPublish(make(chan amqp.Confirmation, 1024))
	go func(c <-chan amqp.Confirmation) {
		for cf := range c {
			if !cf.Ack {
				logger.Warn("publish not acked", "delivery_tag", cf.DeliveryTag)
			}
		}
	}(conf)
	return &channelWrapper{ch: ch, confirms: conf}, nil
}

// Publish sends a persistent JSON message with the given routing key.
func (p *Pool) Publish(routingKey string, body []byte) error {
	cw := <-p.channels
	defer func() { p.channels <- cw }()

	return cw.ch.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Close releases all channels and the connection.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.channels)
	for cw := range p.channels {
		_ = cw.ch.Close()
	}
	_ = p.conn.Close()
}
