package mongodb

import (
	"github.com/amangusss/trainer-workload/internal/models"
)

// workloadDocument — представление агрегата в коллекции.
// Перечисления хранятся строковыми кодами.
type workloadDocument struct {
	ID        string         `bson:"_id"`
	Username  string         `bson:"username"`
	FirstName string         `bson:"firstName"`
	LastName  string         `bson:"lastName"`
	Status    string         `bson:"status"`
	Years     []yearDocument `bson:"years"`
}

type yearDocument struct {
	Year   int             `bson:"year"`
	Months []monthDocument `bson:"months"`
}

type monthDocument struct {
	Month      string  `bson:"month"`
	TotalHours float64 `bson:"totalHours"`
}

func fromModel(w *models.TrainerWorkload) (workloadDocument, error) {
	status, err := models.TrainerStatusCode(w.Status)
	if err != nil {
		return workloadDocument{}, err
	}

	years := make([]yearDocument, 0, len(w.Years))
	for _, y := range w.Years {
		months := make([]monthDocument, 0, len(y.Months))
		for _, m := range y.Months {
			code, err := models.MonthCode(m.Month)
			if err != nil {
				return workloadDocument{}, err
			}
			months = append(months, monthDocument{Month: code, TotalHours: m.TotalHours})
		}
		years = append(years, yearDocument{Year: y.Year, Months: months})
	}

	return workloadDocument{
		ID:        w.Username,
		Username:  w.Username,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Status:    status,
		Years:     years,
	}, nil
}

func (d workloadDocument) toModel() (*models.TrainerWorkload, error) {
	status, err := models.ParseTrainerStatus(d.Status)
	if err != nil {
		return nil, err
	}

	w := &models.TrainerWorkload{
		Username:  d.Username,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Status:    status,
		Years:     make([]*models.YearSummary, 0, len(d.Years)),
	}
	for _, y := range d.Years {
		year := &models.YearSummary{Year: y.Year, Months: make([]*models.MonthSummary, 0, len(y.Months))}
		for _, m := range y.Months {
			month, err := models.ParseMonth(m.Month)
			if err != nil {
				return nil, err
			}
			year.Months = append(year.Months, &models.MonthSummary{Month: month, TotalHours: m.TotalHours})
		}
		w.Years = append(w.Years, year)
	}
	return w, nil
}
