// Package validation собирает validator.Validate с дополнительными правилами,
// которые нужны для входящих событий тренировок.
package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/amangusss/trainer-workload/internal/models"
)

const (
	// TagNotBlank — строка не должна состоять только из пробелов.
	TagNotBlank = "notblank"
	// TagDate — строка является датой в формате models.DateLayout.
	TagDate = "date"
	// TagNotFuture — дата в формате models.DateLayout не позже сегодняшнего дня.
	TagNotFuture = "notfuture"
)

// New возвращает валидатор с зарегистрированными правилами notblank, date и notfuture.
func New() *validator.Validate {
	return NewWithClock(time.Now)
}

// NewWithClock то же, что New, но с подменяемым источником текущего времени.
func NewWithClock(now func() time.Time) *validator.Validate {
	v := validator.New()
	// Регистрация не падает на корректных тегах, ошибки здесь быть не может.
	_ = v.RegisterValidation(TagNotBlank, notBlank)
	_ = v.RegisterValidation(TagDate, isDate)
	_ = v.RegisterValidation(TagNotFuture, notFuture(now))
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func isDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := time.Parse(models.DateLayout, field.String())
	return err == nil
}

func notFuture(now func() time.Time) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		date, err := time.Parse(models.DateLayout, field.String())
		if err != nil {
			// Формат проверяет тег date.
			return true
		}
		today := now()
		y, m, d := today.Date()
		endOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		return date.Before(endOfToday)
	}
}
