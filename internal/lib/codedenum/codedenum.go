// Package codedenum реализует двустороннее отображение закрытых перечислений
// на их строковые коды для передачи по сети и хранения.
//
// Каждое перечисление описывается таблицей значение -> код. Codec проверяет,
// что коды уникальны, и разбирает входящие коды без учёта регистра.
package codedenum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCode возвращается, если код не соответствует ни одному значению перечисления.
var ErrUnsupportedCode = errors.New("unsupported code")

// Codec хранит таблицу соответствия значений перечисления и их кодов.
type Codec[T comparable] struct {
	name   string
	codes  map[T]string
	values map[string]T
}

// New создает Codec для перечисления name по таблице codes.
// Паникует, если два значения имеют одинаковый код: это ошибка программиста.
func New[T comparable](name string, codes map[T]string) *Codec[T] {
	values := make(map[string]T, len(codes))
	for v, code := range codes {
		key := strings.ToLower(code)
		if _, dup := values[key]; dup {
			panic(fmt.Sprintf("codedenum: duplicate code %q for enum %s", code, name))
		}
		values[key] = v
	}
	return &Codec[T]{
		name:   name,
		codes:  codes,
		values: values,
	}
}

// Code возвращает код значения v.
func (c *Codec[T]) Code(v T) (string, error) {
	code, ok := c.codes[v]
	if !ok {
		// %#v не вызывает String(), который сам идёт через Code.
		return "", fmt.Errorf("%w: %#v for enum %s", ErrUnsupportedCode, v, c.name)
	}
	return code, nil
}

// Parse возвращает значение перечисления по коду. Регистр не учитывается.
func (c *Codec[T]) Parse(code string) (T, error) {
	v, ok := c.values[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q for enum %s", ErrUnsupportedCode, code, c.name)
	}
	return v, nil
}

// Name возвращает имя перечисления.
func (c *Codec[T]) Name() string {
	return c.name
}
