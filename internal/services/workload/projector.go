package services

import (
	"cmp"
	"slices"

	"github.com/amangusss/trainer-workload/internal/models"
)

// Project формирует сводку по агрегату. Возвращает nil, если агрегата нет
// или у него не заполнен профиль тренера.
//
// Годы сортируются по возрастанию, месяцы выводятся в порядке хранения.
func Project(w *models.TrainerWorkload) *models.Summary {
	if w == nil || w.Username == "" {
		return nil
	}

	years := make([]models.SummaryYear, 0, len(w.Years))
	for _, y := range w.Years {
		months := make([]models.SummaryMonth, 0, len(y.Months))
		for _, m := range y.Months {
			months = append(months, models.SummaryMonth{
				Month:                   m.Month,
				TrainingSummaryDuration: m.TotalHours,
			})
		}
		years = append(years, models.SummaryYear{Year: y.Year, Months: months})
	}
	slices.SortStableFunc(years, func(a, b models.SummaryYear) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return &models.Summary{
		Username:  w.Username,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Status:    w.Status,
		Years:     years,
	}
}
