package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hamiltonbss/qapp/internal/domain"
)

type QuestaoRepo struct {
	col *mongo.Collection
}

func NewQuestaoRepo(db *DB) *QuestaoRepo {
	return &QuestaoRepo{col: db.db.Collection(colQuestoes)}
}

func (r *QuestaoRepo) ListByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) (result []domain.Questao, err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "list", start, err) }()

	filter := bson.M{"questionario_id": questionarioID}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list questoes: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode questoes: %w", err)
	}
	return result, nil
}

func (r *QuestaoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (q *domain.Questao, err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "get", start, err) }()

	var doc domain.Questao
	err = r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrQuestaoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get questao: %w", err)
	}
	return &doc, nil
}

func (r *QuestaoRepo) Insert(ctx context.Context, q *domain.Questao) (inserted *domain.Questao, err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "insert", start, err) }()

	doc := *q
	doc.ID = primitive.NilObjectID
	doc.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert questao: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return &doc, nil
}

func (r *QuestaoRepo) UpdateExplicacao(ctx context.Context, id primitive.ObjectID, explicacao string) (err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "update_explicacao", start, err) }()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"explicacao": explicacao}})
	if err != nil {
		return fmt.Errorf("failed to update explicacao: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestaoNotFound
	}
	return nil
}

func (r *QuestaoRepo) CountByQuestionarios(ctx context.Context, questionarioIDs []primitive.ObjectID) (n int64, err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "count", start, err) }()

	n, err = r.col.CountDocuments(ctx, bson.M{"questionario_id": bson.M{"$in": questionarioIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to count questoes: %w", err)
	}
	return n, nil
}

// SampleByQuestionarios draws n random questions across the given
// questionarios using a $sample stage.
func (r *QuestaoRepo) SampleByQuestionarios(ctx context.Context, questionarioIDs []primitive.ObjectID, n int) (result []domain.Questao, err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "sample", start, err) }()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"questionario_id": bson.M{"$in": questionarioIDs}}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample questoes: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode sampled questoes: %w", err)
	}
	return result, nil
}

func (r *QuestaoRepo) DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) (err error) {
	start := time.Now()
	defer func() { observe(colQuestoes, "delete_by_questionario", start, err) }()

	if _, err = r.col.DeleteMany(ctx, bson.M{"questionario_id": questionarioID}); err != nil {
		return fmt.Errorf("failed to delete questoes: %w", err)
	}
	return nil
}
