package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoritosNome is the reserved questionario that collects saved questions.
// It is seeded at startup and cannot be deleted.
const FavoritosNome = "Favoritos"

type Questionario struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome      string             `bson:"nome" json:"nome"`
	Descricao string             `bson:"descricao,omitempty" json:"descricao,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Desempenho aggregates recorded answers for a questionario.
type Desempenho struct {
	Total          int64   `json:"total"`
	Acertos        int64   `json:"acertos"`
	Aproveitamento float64 `json:"aproveitamento"`
}

type Resposta struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionarioID primitive.ObjectID `bson:"questionario_id" json:"questionario_id"`
	QuestaoID      primitive.ObjectID `bson:"questao_id" json:"questao_id"`
	Correto        bool               `bson:"correto" json:"correto"`
	RespondidoEm   time.Time          `bson:"respondido_em" json:"respondido_em"`
}

// QuestionarioRepository persists questionarios.
type QuestionarioRepository interface {
	List(ctx context.Context) ([]Questionario, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Questionario, error)
	GetByNome(ctx context.Context, nome string) (*Questionario, error)
	Insert(ctx context.Context, nome, descricao string) (*Questionario, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RespostaRepository records answer attempts and aggregates desempenho.
// The caller stamps RespondidoEm so time stays injectable.
type RespostaRepository interface {
	Insert(ctx context.Context, resposta Resposta) error
	Desempenho(ctx context.Context, questionarioID primitive.ObjectID) (*Desempenho, error)
	DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) error
}
