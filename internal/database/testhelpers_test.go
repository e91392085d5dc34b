package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
)

// CreateTestQuestionario inserts a questionario and returns it.
func CreateTestQuestionario(t *testing.T, db *DB, nome string) *domain.Questionario {
	t.Helper()

	repo := NewQuestionarioRepo(db)
	q, err := repo.Insert(context.Background(), nome, "")
	require.NoError(t, err)
	require.False(t, q.ID.IsZero())

	return q
}

// CreateTestQuestaoVF inserts a VF questao with default text.
func CreateTestQuestaoVF(t *testing.T, db *DB, questionarioID primitive.ObjectID, correta bool) *domain.Questao {
	t.Helper()

	gabarito := "F"
	if correta {
		gabarito = "V"
	}
	repo := NewQuestaoRepo(db)
	q, err := repo.Insert(context.Background(), &domain.Questao{
		QuestionarioID: questionarioID,
		Tipo:           domain.TipoVF,
		Texto:          "A licitação é regra e a contratação direta é exceção.",
		CorretaText:    gabarito,
	})
	require.NoError(t, err)
	return q
}

// CreateTestQuestaoMC inserts an MC questao with the given alternatives.
func CreateTestQuestaoMC(t *testing.T, db *DB, questionarioID primitive.ObjectID, alternativas []string, corretaLetra string) *domain.Questao {
	t.Helper()

	repo := NewQuestaoRepo(db)
	q, err := repo.Insert(context.Background(), &domain.Questao{
		QuestionarioID: questionarioID,
		Tipo:           domain.TipoMC,
		Texto:          "Qual é a derivada de x^2?",
		Alternativas:   alternativas,
		CorretaText:    corretaLetra,
	})
	require.NoError(t, err)
	return q
}
