package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// PublishMessage публикует сообщение в RabbitMQ в виде JSON.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any, headers amqp.Table) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := publish(ch, exchange, routingkey, "application/json", body, headers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func publish(ch *amqp.Channel, exchange, routingkey, contentType string, body []byte, headers amqp.Table) error {
	return ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  contentType,
			Headers:      headers,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

// Publisher публикует сообщения в один exchange. Безопасен для
// одновременного использования из нескольких горутин.
type Publisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
}

// NewPublisher создаёт Publisher поверх канала.
func NewPublisher(ch *amqp.Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

// PublishJSON сериализует message в JSON и публикует его с ключом routingKey.
func (p *Publisher) PublishJSON(routingKey string, message any, headers amqp.Table) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PublishMessage(p.ch, p.exchange, routingKey, message, headers)
}

// PublishRaw публикует тело сообщения без изменений.
func (p *Publisher) PublishRaw(routingKey, contentType string, body []byte, headers amqp.Table) error {
	const op = "rabbitmq.Publisher.PublishRaw"
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := publish(p.ch, p.exchange, routingKey, contentType, body, headers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
