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

type QuestionarioRepo struct {
	col *mongo.Collection
}

func NewQuestionarioRepo(db *DB) *QuestionarioRepo {
	return &QuestionarioRepo{col: db.db.Collection(colQuestionarios)}
}

func (r *QuestionarioRepo) List(ctx context.Context) (result []domain.Questionario, err error) {
	start := time.Now()
	defer func() { observe(colQuestionarios, "list", start, err) }()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list questionarios: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode questionarios: %w", err)
	}
	return result, nil
}

func (r *QuestionarioRepo) GetByID(ctx context.Context, id primitive.ObjectID) (q *domain.Questionario, err error) {
	start := time.Now()
	defer func() { observe(colQuestionarios, "get", start, err) }()

	var doc domain.Questionario
	err = r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrQuestionarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get questionario: %w", err)
	}
	return &doc, nil
}

func (r *QuestionarioRepo) GetByNome(ctx context.Context, nome string) (q *domain.Questionario, err error) {
	start := time.Now()
	defer func() { observe(colQuestionarios, "get_by_nome", start, err) }()

	var doc domain.Questionario
	err = r.col.FindOne(ctx, bson.M{"nome": nome}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrQuestionarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get questionario by nome: %w", err)
	}
	return &doc, nil
}

func (r *QuestionarioRepo) Insert(ctx context.Context, nome, descricao string) (q *domain.Questionario, err error) {
	start := time.Now()
	defer func() { observe(colQuestionarios, "insert", start, err) }()

	doc := domain.Questionario{
		Nome:      nome,
		Descricao: descricao,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, domain.ErrDuplicateNome
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert questionario: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return &doc, nil
}

func (r *QuestionarioRepo) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	start := time.Now()
	defer func() { observe(colQuestionarios, "delete", start, err) }()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete questionario: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionarioNotFound
	}
	return nil
}
