// Package services содержит обработчик сообщений очереди событий нагрузки.
// Сообщения, которые нельзя обработать, перекладываются в DLQ с причиной.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/streadway/amqp"

	"github.com/amangusss/trainer-workload/internal/lib/rabbitmq"
	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
	"github.com/amangusss/trainer-workload/internal/lib/validation"
	"github.com/amangusss/trainer-workload/internal/metrics"
	"github.com/amangusss/trainer-workload/internal/models"
)

const (
	// ReasonMissingInfo — причина для сообщений, не прошедших проверку полей.
	ReasonMissingInfo = "Required information is missing"
	// ReasonProcessingPrefix — префикс причины для ошибок разбора и обработки.
	ReasonProcessingPrefix = "Processing error: "

	// HeaderErrorReason — заголовок DLQ-сообщения с причиной.
	HeaderErrorReason = "errorReason"
	// HeaderTimestamp — заголовок DLQ-сообщения со временем в миллисекундах Unix.
	HeaderTimestamp = "timeStamp"

	// DLQTestPrefix — сообщения с таким префиксом логина всегда уходят в DLQ.
	DLQTestPrefix = "DLQ_TEST_"
)

// Service описывает обработку события тренировки.
type Service interface {
	ObtainWorkload(ctx context.Context, event models.TrainingEvent) error
}

// DeadLetterPublisher публикует сообщения в DLQ.
type DeadLetterPublisher interface {
	PublishRaw(routingKey, contentType string, body []byte, headers amqp.Table) error
}

// Listener обрабатывает сообщения очереди событий нагрузки.
type Listener struct {
	log      *slog.Logger
	service  Service
	dlq      DeadLetterPublisher
	dlqKey   string
	validate *validator.Validate
	now      func() time.Time
}

// NewListener создаёт Listener. dlqRoutingKey — ключ маршрутизации DLQ.
func NewListener(log *slog.Logger, service Service, dlq DeadLetterPublisher, dlqRoutingKey string) *Listener {
	return &Listener{
		log:      log,
		service:  service,
		dlq:      dlq,
		dlqKey:   dlqRoutingKey,
		validate: validation.New(),
		now:      time.Now,
	}
}

// Handle обрабатывает одно сообщение. Сообщение никогда не повторяется:
// при любой ошибке оно перекладывается в DLQ. Ошибка возвращается только
// если не удалось опубликовать в DLQ.
func (l *Listener) Handle(ctx context.Context, msg rabbitmq.Message) error {
	const op = "services.listener.Handle"

	id := txid.Resolve(rabbitmq.HeaderString(msg.Headers, txid.MessageHeader))
	ctx = txid.WithContext(ctx, id)
	log := l.log.With(slog.String("op", op), sl.TxID(id))

	var req models.DummyEvent
	if err := json.Unmarshal(msg.Body, &req); err != nil {
		log.Error("failed to decode message body", sl.Err(err))
		return l.deadLetter(ctx, log, msg, ReasonProcessingPrefix+err.Error(), "decode")
	}
	log = log.With(slog.String("username", req.Username))
	log.Info("received workload message")

	if err := l.check(req); err != nil {
		log.Error("invalid workload message, sending to DLQ", sl.Err(err))
		return l.deadLetter(ctx, log, msg, ReasonMissingInfo, "validation")
	}

	event, err := req.ToEvent()
	if err != nil {
		log.Error("invalid workload message, sending to DLQ", sl.Err(err))
		return l.deadLetter(ctx, log, msg, ReasonMissingInfo, "validation")
	}

	if err := l.service.ObtainWorkload(ctx, event); err != nil {
		log.Error("error processing workload", sl.Err(err))
		return l.deadLetter(ctx, log, msg, ReasonProcessingPrefix+err.Error(), "processing")
	}

	log.Info("workload processed successfully")
	return nil
}

func (l *Listener) check(req models.DummyEvent) error {
	if strings.HasPrefix(req.Username, DLQTestPrefix) {
		return fmt.Errorf("%w: username has test prefix %s", models.ErrValidation, DLQTestPrefix)
	}
	if err := l.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}
	return nil
}

func (l *Listener) deadLetter(ctx context.Context, log *slog.Logger, msg rabbitmq.Message, reason, label string) error {
	const op = "services.listener.deadLetter"

	contentType := msg.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	headers := amqp.Table{
		txid.MessageHeader: txid.FromContext(ctx),
		HeaderErrorReason:  reason,
		HeaderTimestamp:    l.now().UnixMilli(),
	}

	if err := l.dlq.PublishRaw(l.dlqKey, contentType, msg.Body, headers); err != nil {
		log.Error("failed to send message to DLQ", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.DeadLettered.WithLabelValues(label).Inc()
	log.Info("sent message to DLQ", slog.String("reason", reason))
	return nil
}
