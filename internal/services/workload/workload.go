// Package services содержит бизнес-логику учёта нагрузки тренеров:
// применение событий тренировок к агрегату, построение сводки и кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
	"github.com/amangusss/trainer-workload/internal/metrics"
	"github.com/amangusss/trainer-workload/internal/models"
)

// Repository определяет методы для работы с агрегатами нагрузки в хранилище.
type Repository interface {
	// FindByUsername возвращает агрегат тренера или nil, если его нет.
	FindByUsername(ctx context.Context, username string) (*models.TrainerWorkload, error)
	// Save сохраняет агрегат (upsert по username).
	Save(ctx context.Context, workload *models.TrainerWorkload) error
	// Delete удаляет агрегат тренера.
	Delete(ctx context.Context, username string) error
}

// Cache описывает методы для кэширования сводок.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// DefaultSummaryTTL — время жизни сводки в кеше по умолчанию.
const DefaultSummaryTTL = time.Hour

// WorkloadService реализует обработку событий тренировок и выдачу сводок.
//
// Загрузка, применение события и сохранение не синхронизированы между собой:
// два одновременных события одного тренера могут перезаписать друг друга
// (побеждает последнее сохранение).
type WorkloadService struct {
	repo        Repository
	cache       Cache
	log         *slog.Logger
	summaryTTL  time.Duration
	deleteEmpty bool
}

// Option настраивает WorkloadService.
type Option func(*WorkloadService)

// WithSummaryTTL задаёт время жизни сводки в кеше.
func WithSummaryTTL(ttl time.Duration) Option {
	return func(s *WorkloadService) {
		if ttl > 0 {
			s.summaryTTL = ttl
		}
	}
}

// WithDeleteEmpty включает удаление агрегата из хранилища,
// когда у тренера не остаётся ни одного года.
func WithDeleteEmpty(enabled bool) Option {
	return func(s *WorkloadService) {
		s.deleteEmpty = enabled
	}
}

// NewWorkloadService создает новый экземпляр WorkloadService.
func NewWorkloadService(repo Repository, cache Cache, log *slog.Logger, opts ...Option) *WorkloadService {
	s := &WorkloadService{
		repo:       repo,
		cache:      cache,
		log:        log,
		summaryTTL: DefaultSummaryTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ObtainWorkload применяет событие тренировки к нагрузке тренера и сохраняет результат.
//
// Выполняет ровно одну загрузку и не более одного сохранения или удаления.
// При ошибке применения события ничего не сохраняется.
func (s *WorkloadService) ObtainWorkload(ctx context.Context, event models.TrainingEvent) (err error) {
	const op = "services.workload.ObtainWorkload"
	log := s.log.With(
		slog.String("op", op),
		sl.TxID(txid.FromContext(ctx)),
		slog.String("username", event.Username),
		slog.String("action", event.Action.String()),
	)
	defer func() {
		metrics.EventsProcessed.WithLabelValues(event.Action.String(), metrics.Result(err)).Inc()
	}()

	year, month := event.Period()
	log.Info("processing training event",
		slog.Int("year", year),
		slog.String("month", month.String()),
		slog.Float64("duration", event.Duration),
	)

	current, err := s.repo.FindByUsername(ctx, event.Username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	updated, err := Apply(current, event)
	if err != nil {
		log.Warn("failed to apply training event", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.deleteEmpty && len(updated.Years) == 0 {
		log.Debug("workload has no years left, deleting")
		if err := s.repo.Delete(ctx, event.Username); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if err := s.repo.Save(ctx, updated); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	cacheKey := summaryCacheKey(event.Username)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		log.Warn("failed to invalidate cached summary", slog.String("key", cacheKey), sl.Err(err))
	}

	log.Info("training event processed")
	return nil
}

// Summary возвращает сводку нагрузки тренера, используя кеш или репозиторий.
func (s *WorkloadService) Summary(ctx context.Context, username string) (*models.Summary, error) {
	const op = "services.workload.Summary"
	log := s.log.With(
		slog.String("op", op),
		sl.TxID(txid.FromContext(ctx)),
		slog.String("username", username),
	)

	cacheKey := summaryCacheKey(username)
	var cached models.Summary
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn("failed to read summary from cache", sl.Err(err))
	}
	if found && err == nil {
		metrics.CacheHits.Inc()
		log.Debug("summary found in cache")
		return &cached, nil
	}
	metrics.CacheMisses.Inc()

	workload, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := Project(workload)
	if summary == nil {
		log.Warn("workload not found")
		return nil, fmt.Errorf("%s: %w: %s", op, models.ErrTrainerNotFound, username)
	}

	if err := s.cache.Set(ctx, cacheKey, summary, s.summaryTTL); err != nil {
		log.Warn("failed to cache summary", slog.String("key", cacheKey), sl.Err(err))
	}

	log.Info("summary retrieved", slog.Int("years", len(summary.Years)))
	return summary, nil
}

func summaryCacheKey(username string) string {
	return "workload:summary:" + username
}
