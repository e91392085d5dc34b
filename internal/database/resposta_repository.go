package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamiltonbss/qapp/internal/domain"
)

type RespostaRepo struct {
	col *mongo.Collection
}

func NewRespostaRepo(db *DB) *RespostaRepo {
	return &RespostaRepo{col: db.db.Collection(colRespostas)}
}

func (r *RespostaRepo) Insert(ctx context.Context, resposta domain.Resposta) (err error) {
	start := time.Now()
	defer func() { observe(colRespostas, "insert", start, err) }()

	if _, err = r.col.InsertOne(ctx, resposta); err != nil {
		return fmt.Errorf("failed to insert resposta: %w", err)
	}
	return nil
}

// Desempenho aggregates total attempts and correct answers for a
// questionario. A questionario without respostas yields zeroes.
func (r *RespostaRepo) Desempenho(ctx context.Context, questionarioID primitive.ObjectID) (d *domain.Desempenho, err error) {
	start := time.Now()
	defer func() { observe(colRespostas, "desempenho", start, err) }()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"questionario_id": questionarioID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"total":   bson.M{"$sum": 1},
			"acertos": bson.M{"$sum": bson.M{"$cond": bson.A{"$correto", 1, 0}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate desempenho: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total   int64 `bson:"total"`
		Acertos int64 `bson:"acertos"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode desempenho: %w", err)
	}

	result := &domain.Desempenho{}
	if len(rows) > 0 {
		result.Total = rows[0].Total
		result.Acertos = rows[0].Acertos
		if result.Total > 0 {
			result.Aproveitamento = float64(result.Acertos) / float64(result.Total) * 100
		}
	}
	return result, nil
}

func (r *RespostaRepo) DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) (err error) {
	start := time.Now()
	defer func() { observe(colRespostas, "delete_by_questionario", start, err) }()

	if _, err = r.col.DeleteMany(ctx, bson.M{"questionario_id": questionarioID}); err != nil {
		return fmt.Errorf("failed to delete respostas: %w", err)
	}
	return nil
}
