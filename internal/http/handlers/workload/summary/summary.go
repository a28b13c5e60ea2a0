// Package summary реализует HTTP-обработчик получения сводки нагрузки тренера.
package summary

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/amangusss/trainer-workload/internal/http/response"
	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
	"github.com/amangusss/trainer-workload/internal/models"
)

// Handler обрабатывает запросы на получение сводки по username.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения сводки.
type Service interface {
	Summary(ctx context.Context, username string) (*models.Summary, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает сводку нагрузки тренера.
//
// @Summary Получить сводку нагрузки тренера
// @Description Возвращает суммарные часы тренировок по годам (по возрастанию) и месяцам.
// @Tags Workload
// @Produce  json
// @Param X-Transaction-Id header string false "Идентификатор транзакции"
// @Param username path string true "Логин тренера"
// @Success 200 {object} models.Summary "Сводка нагрузки"
// @Failure 400 {object} response.ErrorResponse "Пустой логин"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/workload/{username} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workload.summary"

	username := chi.URLParam(r, "username")
	log := h.log.With(
		slog.String("op", op),
		sl.TxID(txid.FromContext(r.Context())),
		slog.String("username", username),
	)

	if strings.TrimSpace(username) == "" {
		log.Error("empty username in url")
		response.WriteError(w, r, http.StatusBadRequest, response.ErrorBadRequest, "username must not be blank")
		return
	}

	res, err := h.service.Summary(r.Context(), username)
	if err != nil {
		log.Error("failed to get workload summary", sl.Err(err))
		response.WriteServiceError(w, r, err)
		return
	}

	log.Info("success to get workload summary", slog.Int("years", len(res.Years)))
	render.JSON(w, r, res)
}
