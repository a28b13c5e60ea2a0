// Package process реализует HTTP-обработчик приёма события тренировки.
//
// Handler декодирует тело запроса, проверяет поля и передаёт событие
// в бизнес-логику. При успехе отвечает 200 без тела.
package process

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/amangusss/trainer-workload/internal/http/response"
	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
	"github.com/amangusss/trainer-workload/internal/lib/validation"
	"github.com/amangusss/trainer-workload/internal/models"
)

// Handler обрабатывает запросы на добавление или удаление часов тренировки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обработки события.
type Service interface {
	ObtainWorkload(ctx context.Context, event models.TrainingEvent) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP обрабатывает событие тренировки.
//
// @Summary Обработать событие тренировки
// @Description Добавляет (ADD) или вычитает (DELETE) часы тренировки из месячной нагрузки тренера.
// @Tags Workload
// @Accept  json
// @Produce  json
// @Param X-Transaction-Id header string false "Идентификатор транзакции"
// @Param request body models.DummyEvent true "Событие тренировки"
// @Success 200 "Событие обработано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Тренер или месяц не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/workload [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workload.process"

	log := h.log.With(
		slog.String("op", op),
		sl.TxID(txid.FromContext(r.Context())),
	)

	var req models.DummyEvent
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		if errors.Is(err, models.ErrUnsupportedCode) {
			response.WriteError(w, r, http.StatusBadRequest, response.ErrorBadRequest, err.Error())
			return
		}
		response.WriteError(w, r, http.StatusBadRequest, response.ErrorBadRequest, "failed to decode request")
		return
	}
	log = log.With(slog.String("username", req.Username))
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.WriteError(w, r, http.StatusBadRequest, response.ErrorValidation, response.ValidationError(verrs))
			return
		}
		response.WriteError(w, r, http.StatusBadRequest, response.ErrorValidation, err.Error())
		return
	}

	event, err := req.ToEvent()
	if err != nil {
		log.Error("failed to convert request", sl.Err(err))
		response.WriteServiceError(w, r, err)
		return
	}

	if err := h.service.ObtainWorkload(r.Context(), event); err != nil {
		log.Error("failed to process training event", sl.Err(err))
		response.WriteServiceError(w, r, err)
		return
	}

	log.Info("training event processed")
	w.WriteHeader(http.StatusOK)
}
