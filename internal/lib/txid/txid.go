// Package txid управляет идентификатором транзакции (correlation id),
// который сопровождает HTTP-запрос или сообщение очереди через логи и ответы.
package txid

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	// Header — HTTP-заголовок с идентификатором транзакции.
	Header = "X-Transaction-Id"
	// MessageHeader — заголовок AMQP-сообщения с идентификатором транзакции.
	MessageHeader = "transactionId"
)

type ctxKey struct{}

// New генерирует новый идентификатор.
func New() string {
	return uuid.NewString()
}

// Resolve возвращает переданный идентификатор или новый, если он пустой.
func Resolve(id string) string {
	if strings.TrimSpace(id) == "" {
		return New()
	}
	return id
}

// WithContext кладёт идентификатор в контекст.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достаёт идентификатор из контекста, пустая строка если его нет.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
