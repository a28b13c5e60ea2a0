// Package mongodb реализует хранилище агрегатов нагрузки тренеров в MongoDB.
// Один документ на тренера, идентификатор документа — username.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/amangusss/trainer-workload/internal/metrics"
	"github.com/amangusss/trainer-workload/internal/models"
)

// DefaultCollection — имя коллекции с агрегатами по умолчанию.
const DefaultCollection = "trainer_workloads"

const pingTimeout = 5 * time.Second

// Storage инкапсулирует клиент MongoDB и коллекцию агрегатов.
type Storage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт индекс по username.
func New(ctx context.Context, uri, database, collection string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	if collection == "" {
		collection = DefaultCollection
	}
	s := &Storage{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// Close закрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping проверяет доступность MongoDB.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// FindByUsername возвращает агрегат тренера или nil, nil, если документа нет.
func (s *Storage) FindByUsername(ctx context.Context, username string) (*models.TrainerWorkload, error) {
	const op = "storage.mongodb.FindByUsername"
	defer observe("find")()

	var doc workloadDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: username}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	w, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

// Save сохраняет агрегат целиком, создавая документ при отсутствии.
func (s *Storage) Save(ctx context.Context, workload *models.TrainerWorkload) error {
	const op = "storage.mongodb.Save"
	defer observe("save")()

	doc, err := fromModel(workload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: doc.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет агрегат тренера. Отсутствие документа ошибкой не считается.
func (s *Storage) Delete(ctx context.Context, username string) error {
	const op = "storage.mongodb.Delete"
	defer observe("delete")()

	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: username}}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.StorageDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
