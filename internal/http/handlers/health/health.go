// Package health реализует проверку готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/amangusss/trainer-workload/internal/lib/sl"
)

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает статусом сервиса и его хранилища.
type Handler struct {
	log    *slog.Logger
	pinger Pinger
}

// New создает Handler. pinger может быть nil.
func New(log *slog.Logger, pinger Pinger) *Handler {
	return &Handler{
		log:    log,
		pinger: pinger,
	}
}

// ServeHTTP возвращает статус сервиса.
//
// @Summary Проверка состояния
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]string "Сервис работает"
// @Failure 503 {object} map[string]string "Хранилище недоступно"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			h.log.Error("storage is unavailable", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{
				"status":  "unavailable",
				"storage": "down",
			})
			return
		}
	}

	render.JSON(w, r, map[string]string{
		"status": "ok",
	})
}
