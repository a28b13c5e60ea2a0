package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
)

// TransactionID берёт идентификатор транзакции из X-Transaction-Id или
// генерирует новый, кладёт его в контекст и возвращает в заголовке ответа.
func TransactionID(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := txid.Resolve(r.Header.Get(txid.Header))
			w.Header().Set(txid.Header, id)

			log := log.With(sl.TxID(id))
			log.Info("incoming request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(txid.WithContext(r.Context(), id)))

			log.Info("response sent", slog.Int("status", ww.Status()))
		})
	}
}
