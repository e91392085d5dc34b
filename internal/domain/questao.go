package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types. VF is true/false, MC is multiple choice with up to five
// alternatives labelled A..E.
const (
	TipoVF = "VF"
	TipoMC = "MC"
)

// Letters labels MC alternatives in order.
const Letters = "ABCDE"

// MaxAlternativas caps the number of MC alternatives.
const MaxAlternativas = 5

type Questao struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionarioID primitive.ObjectID `bson:"questionario_id" json:"questionario_id"`
	Tipo           string             `bson:"tipo" json:"tipo"`
	Texto          string             `bson:"texto" json:"texto"`
	Alternativas   []string           `bson:"alternativas,omitempty" json:"alternativas,omitempty"`
	CorretaText    string             `bson:"correta_text" json:"-"`
	Explicacao     string             `bson:"explicacao,omitempty" json:"explicacao,omitempty"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// QuestaoRepository persists questions.
type QuestaoRepository interface {
	ListByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) ([]Questao, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Questao, error)
	Insert(ctx context.Context, q *Questao) (*Questao, error)
	UpdateExplicacao(ctx context.Context, id primitive.ObjectID, explicacao string) error
	CountByQuestionarios(ctx context.Context, questionarioIDs []primitive.ObjectID) (int64, error)
	SampleByQuestionarios(ctx context.Context, questionarioIDs []primitive.ObjectID, n int) ([]Questao, error)
	DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) error
}
