package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/amangusss/trainer-workload/internal/lib/codedenum"
)

// TrainerStatus — статус тренера.
type TrainerStatus int

const (
	StatusActive TrainerStatus = iota + 1
	StatusInactive
)

// ActionType — тип события тренировки.
type ActionType int

const (
	ActionAdd ActionType = iota + 1
	ActionDelete
)

// Month — календарный месяц в модели нагрузки.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var (
	statusCodec = codedenum.New("TrainerStatus", map[TrainerStatus]string{
		StatusActive:   "ACTIVE",
		StatusInactive: "INACTIVE",
	})
	actionCodec = codedenum.New("ActionType", map[ActionType]string{
		ActionAdd:    "ADD",
		ActionDelete: "DELETE",
	})
	monthCodec = codedenum.New("Month", map[Month]string{
		January:   "JANUARY",
		February:  "FEBRUARY",
		March:     "MARCH",
		April:     "APRIL",
		May:       "MAY",
		June:      "JUNE",
		July:      "JULY",
		August:    "AUGUST",
		September: "SEPTEMBER",
		October:   "OCTOBER",
		November:  "NOVEMBER",
		December:  "DECEMBER",
	})
)

// ParseTrainerStatus возвращает статус по коду ("ACTIVE", "INACTIVE").
func ParseTrainerStatus(code string) (TrainerStatus, error) {
	return statusCodec.Parse(code)
}

// ParseActionType возвращает тип события по коду ("ADD", "DELETE").
func ParseActionType(code string) (ActionType, error) {
	return actionCodec.Parse(code)
}

// ParseMonth возвращает месяц по коду ("JANUARY" ... "DECEMBER").
func ParseMonth(code string) (Month, error) {
	return monthCodec.Parse(code)
}

// TrainerStatusCode возвращает строковый код статуса.
func TrainerStatusCode(s TrainerStatus) (string, error) {
	return statusCodec.Code(s)
}

// MonthCode возвращает строковый код месяца.
func MonthCode(m Month) (string, error) {
	return monthCodec.Code(m)
}

// MonthOf переводит time.Month в Month.
func MonthOf(m time.Month) Month {
	return Month(m)
}

func (s TrainerStatus) String() string { return codeOrFallback(statusCodec, s) }
func (a ActionType) String() string    { return codeOrFallback(actionCodec, a) }
func (m Month) String() string         { return codeOrFallback(monthCodec, m) }

func codeOrFallback[T comparable](c *codedenum.Codec[T], v T) string {
	code, err := c.Code(v)
	if err != nil {
		return fmt.Sprintf("%s(%#v)", c.Name(), v)
	}
	return code
}

// MarshalJSON кодирует статус его строковым кодом.
func (s TrainerStatus) MarshalJSON() ([]byte, error) {
	return marshalCode(statusCodec, s)
}

// UnmarshalJSON принимает "ACTIVE"/"INACTIVE" в любом регистре,
// а также true/false и строки "true"/"false".
func (s *TrainerStatus) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*s = StatusActive
		return nil
	case "false":
		*s = StatusInactive
		return nil
	}

	code, err := unquote(statusCodec, data)
	if err != nil {
		return err
	}
	switch strings.ToLower(code) {
	case "true":
		*s = StatusActive
		return nil
	case "false":
		*s = StatusInactive
		return nil
	}

	v, err := statusCodec.Parse(code)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON кодирует тип события его строковым кодом.
func (a ActionType) MarshalJSON() ([]byte, error) {
	return marshalCode(actionCodec, a)
}

// UnmarshalJSON принимает "ADD"/"DELETE" в любом регистре.
func (a *ActionType) UnmarshalJSON(data []byte) error {
	return unmarshalCode(actionCodec, data, a)
}

// MarshalJSON кодирует месяц его названием ("JANUARY").
func (m Month) MarshalJSON() ([]byte, error) {
	return marshalCode(monthCodec, m)
}

// UnmarshalJSON разбирает название месяца.
func (m *Month) UnmarshalJSON(data []byte) error {
	return unmarshalCode(monthCodec, data, m)
}

func marshalCode[T comparable](c *codedenum.Codec[T], v T) ([]byte, error) {
	code, err := c.Code(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(code)
}

func unmarshalCode[T comparable](c *codedenum.Codec[T], data []byte, dst *T) error {
	code, err := unquote(c, data)
	if err != nil {
		return err
	}
	v, err := c.Parse(code)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func unquote[T comparable](c *codedenum.Codec[T], data []byte) (string, error) {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return "", fmt.Errorf("%w: %s for enum %s", ErrUnsupportedCode, data, c.Name())
	}
	return code, nil
}
