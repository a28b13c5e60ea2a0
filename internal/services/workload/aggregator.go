package services

import (
	"fmt"

	"github.com/amangusss/trainer-workload/internal/models"
)

// Apply применяет одно событие ADD или DELETE к агрегату нагрузки тренера
// и возвращает обновлённый агрегат. current == nil означает, что агрегата ещё нет.
//
// Исходный агрегат не изменяется: при ошибке вызывающий код сохраняет прежнее состояние.
// Положительность длительности здесь не проверяется, это делает валидация запроса.
func Apply(current *models.TrainerWorkload, event models.TrainingEvent) (*models.TrainerWorkload, error) {
	const op = "services.workload.Apply"

	switch event.Action {
	case models.ActionAdd:
		return addHours(current, event), nil
	case models.ActionDelete:
		updated, err := deleteHours(current, event)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return updated, nil
	default:
		return nil, fmt.Errorf("%s: %w: action %d", op, models.ErrUnsupportedCode, int(event.Action))
	}
}

func addHours(current *models.TrainerWorkload, event models.TrainingEvent) *models.TrainerWorkload {
	workload := current.Clone()
	if workload == nil {
		workload = models.NewTrainerWorkload(event.Username)
	}

	workload.FirstName = event.FirstName
	workload.LastName = event.LastName
	workload.Status = event.Status

	year, month := event.Period()
	ys := findOrCreateYear(workload, year)
	ms := findOrCreateMonth(ys, month)
	ms.TotalHours += event.Duration

	return workload
}

func findOrCreateYear(w *models.TrainerWorkload, year int) *models.YearSummary {
	if ys := w.FindYear(year); ys != nil {
		return ys
	}
	ys := &models.YearSummary{Year: year, Months: []*models.MonthSummary{}}
	w.Years = append(w.Years, ys)
	return ys
}

func findOrCreateMonth(ys *models.YearSummary, month models.Month) *models.MonthSummary {
	if ms := ys.FindMonth(month); ms != nil {
		return ms
	}
	ms := &models.MonthSummary{Month: month}
	ys.Months = append(ys.Months, ms)
	return ms
}

func deleteHours(current *models.TrainerWorkload, event models.TrainingEvent) (*models.TrainerWorkload, error) {
	if current == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrTrainerNotFound, event.Username)
	}
	workload := current.Clone()

	year, month := event.Period()
	ys := workload.FindYear(year)
	if ys == nil {
		return nil, fmt.Errorf("%w: %s has no hours in %d", models.ErrWorkloadNotFound, event.Username, year)
	}
	ms := ys.FindMonth(month)
	if ms == nil {
		return nil, fmt.Errorf("%w: %s has no hours in %s %d", models.ErrWorkloadNotFound, event.Username, month, year)
	}

	ms.TotalHours -= event.Duration
	if ms.TotalHours <= 0 {
		ys.RemoveMonth(month)
		if len(ys.Months) == 0 {
			workload.RemoveYear(year)
		}
	}

	return workload, nil
}
