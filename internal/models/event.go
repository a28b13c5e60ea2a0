package models

import (
	"fmt"
	"time"
)

// DateLayout — формат даты тренировки во входящих событиях.
const DateLayout = "2006-01-02"

// TrainingEvent — событие добавления или удаления часов тренировки,
// используемое в бизнес-логике после валидации.
type TrainingEvent struct {
	Username     string
	FirstName    string
	LastName     string
	Status       TrainerStatus
	TrainingDate time.Time
	Duration     float64 // Часы, > 0
	Action       ActionType
}

// Period возвращает год и месяц, к которым относится событие.
func (e TrainingEvent) Period() (int, Month) {
	return e.TrainingDate.Year(), MonthOf(e.TrainingDate.Month())
}

// DummyEvent используется для приёма события из JSON (HTTP или очередь),
// прежде чем конвертировать его в TrainingEvent.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyEvent struct {
	Username         string         `json:"username" validate:"required,notblank"`                         // Логин тренера
	FirstName        string         `json:"firstName" validate:"required,notblank"`                        // Имя
	LastName         string         `json:"lastName" validate:"required,notblank"`                         // Фамилия
	Status           *TrainerStatus `json:"status,omitempty" swaggertype:"string" enums:"ACTIVE,INACTIVE"` // Статус, по умолчанию ACTIVE
	TrainingDate     string         `json:"trainingDate" validate:"required,date,notfuture"`               // Дата в формате 2006-01-02
	TrainingDuration *float64       `json:"trainingDuration" validate:"required,gt=0"`                     // Длительность в часах (>0)
	ActionType       *ActionType    `json:"actionType" validate:"required" swaggertype:"string" enums:"ADD,DELETE"`
}

// ToEvent переводит провалидированный DummyEvent в TrainingEvent.
func (d DummyEvent) ToEvent() (TrainingEvent, error) {
	const op = "models.DummyEvent.ToEvent"

	date, err := time.Parse(DateLayout, d.TrainingDate)
	if err != nil {
		return TrainingEvent{}, fmt.Errorf("%s: %w: invalid training date %q", op, ErrValidation, d.TrainingDate)
	}
	if d.TrainingDuration == nil {
		return TrainingEvent{}, fmt.Errorf("%s: %w: training duration is required", op, ErrValidation)
	}
	if d.ActionType == nil {
		return TrainingEvent{}, fmt.Errorf("%s: %w: action type is required", op, ErrValidation)
	}

	status := StatusActive
	if d.Status != nil {
		status = *d.Status
	}

	return TrainingEvent{
		Username:     d.Username,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Status:       status,
		TrainingDate: date,
		Duration:     *d.TrainingDuration,
		Action:       *d.ActionType,
	}, nil
}
