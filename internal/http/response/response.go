// Package response содержит вспомогательные типы и функции для формирования
// JSON-ответов об ошибках HTTP-обработчиков в едином формате.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/amangusss/trainer-workload/internal/lib/txid"
	"github.com/amangusss/trainer-workload/internal/models"
)

// Названия ошибок в поле error.
const (
	ErrorTrainerNotFound  = "Trainer Not Found"
	ErrorWorkloadNotFound = "Workload Not Found"
	ErrorValidation       = "Validation Error"
	ErrorBadRequest       = "Bad Request"
	ErrorUnauthorized     = "Unauthorized"
	ErrorTooManyRequests  = "Too Many Requests"
	ErrorInternal         = "Internal Server Error"

	// MessageInternal — сообщение для внутренних ошибок, детали не раскрываются.
	MessageInternal = "An unexpected error occurred."
)

// ErrorResponse описывает тело ответа с ошибкой.
type ErrorResponse struct {
	TransactionID string `json:"transactionId" example:"6f1c2b1e-8a4e-4f55-9a57-3b7c1f0d2e11"`
	Error         string `json:"error" example:"Trainer Not Found"`
	Message       string `json:"message" example:"trainer not found: john.doe"`
	Path          string `json:"path" example:"/api/v1/workload/john.doe"`
	Timestamp     string `json:"timestamp" example:"2025-01-15T10:00:00Z"`
	Status        int    `json:"status" example:"404"`
}

// Error формирует ErrorResponse для запроса r.
func Error(r *http.Request, status int, errName, message string) ErrorResponse {
	return ErrorResponse{
		TransactionID: txid.FromContext(r.Context()),
		Error:         errName,
		Message:       message,
		Path:          r.URL.Path,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Status:        status,
	}
}

// WriteError пишет ErrorResponse со статусом status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, errName, message string) {
	render.Status(r, status)
	render.JSON(w, r, Error(r, status, errName, message))
}

// WriteServiceError сопоставляет ошибку сервиса со статусом HTTP и пишет ответ.
// Возвращает выбранный статус.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) int {
	switch {
	case errors.Is(err, models.ErrTrainerNotFound):
		WriteError(w, r, http.StatusNotFound, ErrorTrainerNotFound, err.Error())
		return http.StatusNotFound
	case errors.Is(err, models.ErrWorkloadNotFound):
		WriteError(w, r, http.StatusNotFound, ErrorWorkloadNotFound, err.Error())
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		WriteError(w, r, http.StatusBadRequest, ErrorValidation, err.Error())
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnsupportedCode):
		WriteError(w, r, http.StatusBadRequest, ErrorBadRequest, err.Error())
		return http.StatusBadRequest
	default:
		WriteError(w, r, http.StatusInternalServerError, ErrorInternal, MessageInternal)
		return http.StatusInternalServerError
	}
}

// ValidationError формирует текст ошибки на основе ошибок валидации.
// Каждое нарушение описывается как "поле: сообщение", нарушения разделяются "; ".
func ValidationError(errs validator.ValidationErrors) string {
	errsMsgs := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: is a required field", err.Field()))
		case "notblank":
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: must not be blank", err.Field()))
		case "notfuture":
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: must not be in the future", err.Field()))
		case "date":
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: must be a date in format %s", err.Field(), models.DateLayout))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: must be greater than %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("%s: is not valid", err.Field()))
		}
	}
	return strings.Join(errsMsgs, "; ")
}
