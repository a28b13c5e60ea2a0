package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/amangusss/trainer-workload/internal/lib/sl"
)

// ErrDeliveryClosed возвращается, когда брокер закрыл канал доставки.
var ErrDeliveryClosed = errors.New("delivery channel closed")

// DefaultWorkers — число одновременно обрабатываемых сообщений по умолчанию.
const DefaultWorkers = 10

// Message — полученное сообщение: тело и заголовки.
type Message struct {
	Body        []byte
	Headers     amqp.Table
	ContentType string
}

// Handler обрабатывает одно сообщение. Ошибка означает, что сообщение
// не удалось ни обработать, ни переложить в DLQ.
type Handler func(ctx context.Context, msg Message) error

// ConsumerMessage читает очередь queueName и обрабатывает до workers сообщений одновременно.
//
// Успешно обработанное сообщение подтверждается (ack), при ошибке обработчика
// или панике отклоняется без возврата в очередь. Блокируется до отмены ctx
// (возвращает nil) или закрытия канала доставки; в обоих случаях дожидается
// текущих обработчиков. Отмена ctx не прерывает уже запущенные обработчики.
func ConsumerMessage(ctx context.Context, log *slog.Logger, ch *amqp.Channel, queueName string, workers int, handler Handler) error {
	const op = "rabbitmq.ConsumerMessage"
	log = log.With(slog.String("op", op), slog.String("queue", queueName))

	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case d, ok := <-delivery:
			if !ok {
				return fmt.Errorf("%s: %w", op, ErrDeliveryClosed)
			}
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				// Неподтверждённое сообщение брокер вернёт в очередь.
				return nil
			}
			wg.Add(1)
			go func(d amqp.Delivery) {
				defer wg.Done()
				defer func() { <-sem }()
				msg := Message{Body: d.Body, Headers: d.Headers, ContentType: d.ContentType}
				handleDelivery(ctx, log, d, msg, handler)
			}(d)
		case <-ctx.Done():
			log.Info("consumer stopped")
			return nil
		}
	}
}

// acknowledger — часть amqp.Delivery, которой подтверждается сообщение.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// handleDelivery вызывает handler и подтверждает или отклоняет сообщение.
// Обработчик получает контекст без отмены, чтобы остановка потребителя
// не обрывала начатую обработку.
func handleDelivery(ctx context.Context, log *slog.Logger, d acknowledger, msg Message, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panicked, dropping message", slog.Any("panic", r))
			if nackErr := d.Nack(false, false); nackErr != nil {
				log.Error("failed to nack message", sl.Err(nackErr))
			}
		}
	}()

	if err := handler(context.WithoutCancel(ctx), msg); err != nil {
		log.Error("failed to handle message", sl.Err(err))
		if nackErr := d.Nack(false, false); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
		return
	}
	if ackErr := d.Ack(false); ackErr != nil {
		log.Error("failed to ack message", sl.Err(ackErr))
	}
}

// HeaderString возвращает строковое значение заголовка или пустую строку.
func HeaderString(headers amqp.Table, key string) string {
	switch v := headers[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
