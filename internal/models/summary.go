package models

// Summary — ответ со сводкой нагрузки тренера, годы отсортированы по возрастанию.
type Summary struct {
	Username  string        `json:"username"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Status    TrainerStatus `json:"status" swaggertype:"string" enums:"ACTIVE,INACTIVE"`
	Years     []SummaryYear `json:"years"`
}

// SummaryYear — итоги за год в ответе.
type SummaryYear struct {
	Year   int            `json:"year"`
	Months []SummaryMonth `json:"months"`
}

// SummaryMonth — итоги за месяц в ответе.
type SummaryMonth struct {
	Month                   Month   `json:"month" swaggertype:"string" example:"JANUARY"`
	TrainingSummaryDuration float64 `json:"trainingSummaryDuration"`
}
