package trainerworkload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"github.com/amangusss/trainer-workload/internal/cache"
	"github.com/amangusss/trainer-workload/internal/config"
	"github.com/amangusss/trainer-workload/internal/lib/jwt"
	"github.com/amangusss/trainer-workload/internal/lib/rabbitmq"
	"github.com/amangusss/trainer-workload/internal/lib/sl"
	listener "github.com/amangusss/trainer-workload/internal/services/listener"
	workloadservice "github.com/amangusss/trainer-workload/internal/services/workload"
	"github.com/amangusss/trainer-workload/internal/storage/mongodb"
)

const shutdownTimeout = 15 * time.Second

// App представляет сервис нагрузки тренеров: HTTP API и потребитель очереди.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *mongodb.Storage
	redis    *cache.Cache
	conn     *amqp.Connection
	ch       *amqp.Channel
	listener *listener.Listener
	queue    string
	workers  int
}

// New создает приложение и подключается к MongoDB, Redis и RabbitMQ.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.trainerworkload.New"

	db, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect storage: %w", op, err)
	}
	app := &App{
		logger:  logger,
		db:      db,
		queue:   cfg.Queue,
		workers: cfg.Workers,
	}

	var summaryCache workloadservice.Cache = cache.Noop{}
	if cfg.CacheEnabled() {
		app.redis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close(ctx)
			return nil, fmt.Errorf("%s: cache not initialized: %w", op, err)
		}
		summaryCache = app.redis
	} else {
		logger.Warn("redis address is empty, summary cache disabled")
	}

	service := workloadservice.NewWorkloadService(db, summaryCache, logger,
		workloadservice.WithSummaryTTL(cfg.SummaryTTL),
		workloadservice.WithDeleteEmpty(cfg.DeleteEmpty),
	)

	app.conn, err = rabbitmq.Connect(cfg.RabbitMQURL, cfg.ConnectRetries, cfg.RetryDelay)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("%s: failed to connect RabbitMQ: %w", op, err)
	}
	topology := rabbitmq.WorkloadTopology(cfg.Exchange, cfg.Prefetch,
		rabbitmq.QueueConfig{QueueName: cfg.Queue, RoutingKey: cfg.RoutingKey},
		rabbitmq.QueueConfig{QueueName: cfg.DLQueue, RoutingKey: cfg.DLRoutingKey},
	)
	app.ch, err = rabbitmq.SetupChannel(app.conn, topology)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("%s: failed to setup RabbitMQ channel: %w", op, err)
	}
	publisher := rabbitmq.NewPublisher(app.ch, cfg.Exchange)
	app.listener = listener.NewListener(logger, service, publisher, cfg.DLRoutingKey)

	opts := RouteOptions{
		Pinger:    db,
		RateRPS:   cfg.RPS,
		RateBurst: cfg.Burst,
	}
	if cfg.AuthEnabled() {
		maker, err := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
		if err != nil {
			app.close(ctx)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts.TokenParser = maker
	} else {
		logger.Warn("jwt secret is empty, api authentication disabled")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, opts)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return app, nil
}

// Run запускает HTTP-сервер и потребителя очереди и блокируется до отмены ctx
// или ошибки одного из них.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		a.logger.Info("queue consumer starting", slog.String("queue", a.queue), slog.Int("workers", a.workers))
		return rabbitmq.ConsumerMessage(gctx, a.logger, a.ch, a.queue, a.workers, a.listener.Handle)
	})

	g.Go(func() error {
		<-gctx.Done()
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	})

	err := g.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.close(closeCtx)

	return err
}

func (a *App) close(ctx context.Context) {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close connection", sl.Err(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(ctx); err != nil {
			a.logger.Error("failed to close storage", sl.Err(err))
		}
	}
}
