package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hamiltonbss/qapp/internal/domain"
	"github.com/hamiltonbss/qapp/internal/metrics"
	"github.com/hamiltonbss/qapp/internal/retry"
)

// Collection names.
const (
	colQuestionarios = "questionarios"
	colQuestoes      = "questoes"
	colRespostas     = "respostas"
)

const connectTimeout = 5 * time.Second

// DB wraps the Mongo client and the target database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a Mongo client and verifies the connection with a retrying
// ping. The config loader guarantees a non-empty URI before this is called.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	policy := retry.Policy{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			slog.Warn("Waiting for MongoDB", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}
	err = retry.DoVoid(ctx, policy, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &DB{client: client, db: client.Database(dbName)}, nil
}

// HealthCheck pings the server.
func (d *DB) HealthCheck(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Database returns the underlying database handle for tests.
func (d *DB) Database() *mongo.Database {
	return d.db
}

// EnsureIndexes creates the collection indexes and seeds the Favoritos
// questionario. Runs at startup, mirroring a migrations step.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.db.Collection(colQuestionarios).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nome", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_nome"),
	})
	if err != nil {
		return fmt.Errorf("failed to create uq_nome index: %w", err)
	}

	_, err = d.db.Collection(colQuestoes).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "questionario_id", Value: 1}},
			Options: options.Index().SetName("ix_qid"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("ix_tags"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create questoes indexes: %w", err)
	}

	_, err = d.db.Collection(colRespostas).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "questionario_id", Value: 1}},
			Options: options.Index().SetName("ix_respostas_qid"),
		},
		{
			Keys:    bson.D{{Key: "questao_id", Value: 1}},
			Options: options.Index().SetName("ix_respostas_questao"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create respostas indexes: %w", err)
	}

	if err := d.seedFavoritos(ctx); err != nil {
		return err
	}

	slog.Info("Database indexes ensured")
	return nil
}

func (d *DB) seedFavoritos(ctx context.Context) error {
	filter := bson.M{"nome": domain.FavoritosNome}
	update := bson.M{"$setOnInsert": bson.M{
		"nome":       domain.FavoritosNome,
		"descricao":  "Questões salvas como favoritas.",
		"created_at": time.Now().UTC(),
	}}
	_, err := d.db.Collection(colQuestionarios).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to seed favoritos questionario: %w", err)
	}
	return nil
}

// observe records op metrics for a collection call.
func observe(collection, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.MongoOpsTotal.WithLabelValues(collection, operation, status).Inc()
	metrics.MongoOpDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}
