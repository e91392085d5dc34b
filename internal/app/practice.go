package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/hamiltonbss/qapp/internal/domain"
	"github.com/hamiltonbss/qapp/internal/logging"
	"github.com/hamiltonbss/qapp/internal/metrics"
)

// Feedback is returned after grading an answer. The gabarito and explicacao
// are revealed only here, never on the question payloads themselves.
type Feedback struct {
	Correto    bool   `json:"correto"`
	Gabarito   string `json:"gabarito"`
	Explicacao string `json:"explicacao,omitempty"`
}

// StartPractice opens a practice session over a shuffled pool of all
// questions in a questionario.
func (s *Service) StartPractice(ctx context.Context, questionarioID string) (*domain.PracticeSession, error) {
	oid, err := parseQuestionarioID(questionarioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
		return nil, err
	}

	questoes, err := s.questoes.ListByQuestionario(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(questoes) == 0 {
		return nil, fmt.Errorf("%w: questionario has no questoes", domain.ErrValidation)
	}

	pool := make([]string, len(questoes))
	for i, q := range questoes {
		pool[i] = q.ID.Hex()
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	id := uuid.New()
	if err := s.practice.Create(ctx, id, oid.Hex(), pool); err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("practice").Inc()

	logging.WithSession(id.String()).Info("Practice session started", "questionario_id", oid.Hex(), "pool_size", len(pool))
	return s.practice.Get(ctx, id)
}

func (s *Service) PracticeState(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	return s.practice.Get(ctx, id)
}

// CurrentPracticeQuestao returns the question at the top of the pool, or nil
// when the session is finished.
func (s *Service) CurrentPracticeQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error) {
	qid, err := s.practice.Current(ctx, id)
	if err != nil {
		return nil, err
	}
	if qid == "" {
		return nil, nil
	}
	return s.GetQuestao(ctx, qid)
}

// AnswerPractice grades the current question, records a resposta, and
// advances the pool.
func (s *Service) AnswerPractice(ctx context.Context, id uuid.UUID, answer string) (*Feedback, *domain.PracticeSession, error) {
	qid, err := s.practice.Current(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if qid == "" {
		return nil, nil, domain.ErrSessionFinished
	}

	questao, err := s.GetQuestao(ctx, qid)
	if err != nil {
		return nil, nil, err
	}

	correct, err := questao.Grade(answer)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	resposta := domain.Resposta{
		QuestionarioID: questao.QuestionarioID,
		QuestaoID:      questao.ID,
		Correto:        correct,
		RespondidoEm:   s.clock.Now().UTC(),
	}
	if err := s.respostas.Insert(ctx, resposta); err != nil {
		return nil, nil, fmt.Errorf("failed to record resposta: %w", err)
	}
	if err := s.practice.Advance(ctx, id, true, correct); err != nil {
		return nil, nil, err
	}
	metrics.RecordAnswer("practice", correct)

	sess, err := s.practice.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	feedback := &Feedback{
		Correto:    correct,
		Gabarito:   questao.CorretaText,
		Explicacao: questao.Explicacao,
	}
	return feedback, sess, nil
}

// SkipPractice advances the pool without grading or recording anything.
func (s *Service) SkipPractice(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	qid, err := s.practice.Current(ctx, id)
	if err != nil {
		return nil, err
	}
	if qid == "" {
		return nil, domain.ErrSessionFinished
	}

	if err := s.practice.Advance(ctx, id, false, false); err != nil {
		return nil, err
	}
	return s.practice.Get(ctx, id)
}

func (s *Service) StopPractice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.practice.Get(ctx, id); err != nil {
		return err
	}
	return s.practice.Delete(ctx, id)
}
