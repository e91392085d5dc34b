package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
	"github.com/hamiltonbss/qapp/internal/logging"
)

// Service orchestrates all use cases over the Mongo repositories and the
// Redis session stores.
type Service struct {
	questionarios domain.QuestionarioRepository
	questoes      domain.QuestaoRepository
	respostas     domain.RespostaRepository
	practice      domain.PracticeStore
	simulados     domain.SimuladoStore
	clock         clockwork.Clock
}

func NewService(
	questionarios domain.QuestionarioRepository,
	questoes domain.QuestaoRepository,
	respostas domain.RespostaRepository,
	practice domain.PracticeStore,
	simulados domain.SimuladoStore,
	clock clockwork.Clock,
) *Service {
	return &Service{
		questionarios: questionarios,
		questoes:      questoes,
		respostas:     respostas,
		practice:      practice,
		simulados:     simulados,
		clock:         clock,
	}
}

// --- Questionarios ---

func (s *Service) ListQuestionarios(ctx context.Context) ([]domain.Questionario, error) {
	return s.questionarios.List(ctx)
}

func (s *Service) GetQuestionario(ctx context.Context, id string) (*domain.Questionario, error) {
	oid, err := parseQuestionarioID(id)
	if err != nil {
		return nil, err
	}
	return s.questionarios.GetByID(ctx, oid)
}

func (s *Service) CreateQuestionario(ctx context.Context, nome, descricao string) (*domain.Questionario, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome is required", domain.ErrValidation)
	}
	return s.questionarios.Insert(ctx, nome, strings.TrimSpace(descricao))
}

// DeleteQuestionario removes a questionario and cascades to its questoes and
// respostas. The Favoritos questionario is protected.
func (s *Service) DeleteQuestionario(ctx context.Context, id string) error {
	oid, err := parseQuestionarioID(id)
	if err != nil {
		return err
	}

	q, err := s.questionarios.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if q.Nome == domain.FavoritosNome {
		return domain.ErrFavoritosProtected
	}

	if err := s.questionarios.Delete(ctx, oid); err != nil {
		return err
	}
	if err := s.questoes.DeleteByQuestionario(ctx, oid); err != nil {
		return fmt.Errorf("failed to cascade questoes: %w", err)
	}
	if err := s.respostas.DeleteByQuestionario(ctx, oid); err != nil {
		return fmt.Errorf("failed to cascade respostas: %w", err)
	}

	logging.WithQuestionario(oid.Hex()).Info("Questionario deleted", "nome", q.Nome)
	return nil
}

// EnsureQuestionario finds a questionario by name, creating it when absent.
// A duplicate-key race with a concurrent create resolves to the winner.
func (s *Service) EnsureQuestionario(ctx context.Context, nome string) (*domain.Questionario, error) {
	q, err := s.questionarios.GetByNome(ctx, nome)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, domain.ErrQuestionarioNotFound) {
		return nil, err
	}

	q, err = s.questionarios.Insert(ctx, nome, "")
	if errors.Is(err, domain.ErrDuplicateNome) {
		return s.questionarios.GetByNome(ctx, nome)
	}
	return q, err
}

func (s *Service) Desempenho(ctx context.Context, id string) (*domain.Desempenho, error) {
	oid, err := parseQuestionarioID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
		return nil, err
	}
	return s.respostas.Desempenho(ctx, oid)
}

// --- Questoes ---

func (s *Service) ListQuestoes(ctx context.Context, questionarioID string) ([]domain.Questao, error) {
	oid, err := parseQuestionarioID(questionarioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
		return nil, err
	}
	return s.questoes.ListByQuestionario(ctx, oid)
}

func (s *Service) GetQuestao(ctx context.Context, id string) (*domain.Questao, error) {
	oid, err := parseQuestaoID(id)
	if err != nil {
		return nil, err
	}
	return s.questoes.GetByID(ctx, oid)
}

// AddQuestaoVF adds a true/false question. The correta value accepts the
// usual truthy spellings (V, true, 1, sim, verdadeiro) and is stored as
// "V" or "F".
func (s *Service) AddQuestaoVF(ctx context.Context, questionarioID, texto, correta, explicacao string, tags []string) (*domain.Questao, error) {
	oid, err := parseQuestionarioID(questionarioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
		return nil, err
	}

	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, fmt.Errorf("%w: texto is required", domain.ErrValidation)
	}

	corretaText := "F"
	if domain.NormalizeBool(correta) {
		corretaText = "V"
	}

	return s.questoes.Insert(ctx, &domain.Questao{
		QuestionarioID: oid,
		Tipo:           domain.TipoVF,
		Texto:          texto,
		CorretaText:    corretaText,
		Explicacao:     strings.TrimSpace(explicacao),
		Tags:           tags,
	})
}

// AddQuestaoMC adds a multiple-choice question with 2 to 5 alternativas.
// The correta value is a letter A..E or the exact text of an alternative.
func (s *Service) AddQuestaoMC(ctx context.Context, questionarioID, texto string, alternativas []string, correta, explicacao string, tags []string) (*domain.Questao, error) {
	oid, err := parseQuestionarioID(questionarioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
		return nil, err
	}

	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, fmt.Errorf("%w: texto is required", domain.ErrValidation)
	}
	if len(alternativas) < 2 {
		return nil, fmt.Errorf("%w: MC questao needs at least 2 alternativas", domain.ErrValidation)
	}
	if len(alternativas) > domain.MaxAlternativas {
		return nil, fmt.Errorf("%w: MC questao allows at most %d alternativas", domain.ErrValidation, domain.MaxAlternativas)
	}

	letter, err := domain.ResolveCorretaMC(alternativas, correta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return s.questoes.Insert(ctx, &domain.Questao{
		QuestionarioID: oid,
		Tipo:           domain.TipoMC,
		Texto:          texto,
		Alternativas:   alternativas,
		CorretaText:    letter,
		Explicacao:     strings.TrimSpace(explicacao),
		Tags:           tags,
	})
}

func (s *Service) UpdateExplicacao(ctx context.Context, questaoID, explicacao string) error {
	oid, err := parseQuestaoID(questaoID)
	if err != nil {
		return err
	}
	return s.questoes.UpdateExplicacao(ctx, oid, strings.TrimSpace(explicacao))
}

// Favoritar copies a questao into the Favoritos questionario.
func (s *Service) Favoritar(ctx context.Context, questaoID string) (*domain.Questao, error) {
	oid, err := parseQuestaoID(questaoID)
	if err != nil {
		return nil, err
	}

	q, err := s.questoes.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	favoritos, err := s.EnsureQuestionario(ctx, domain.FavoritosNome)
	if err != nil {
		return nil, err
	}

	copied := *q
	copied.ID = primitive.NilObjectID
	copied.QuestionarioID = favoritos.ID
	return s.questoes.Insert(ctx, &copied)
}

// --- ID parsing ---

func parseQuestionarioID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrQuestionarioNotFound
	}
	return oid, nil
}

func parseQuestaoID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrQuestaoNotFound
	}
	return oid, nil
}
