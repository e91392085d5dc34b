package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
	"github.com/hamiltonbss/qapp/internal/logging"
	"github.com/hamiltonbss/qapp/internal/metrics"
)

// SimuladoResult is the summary of a finished (or running) simulado.
type SimuladoResult struct {
	Total          int64   `json:"total"`
	Acertos        int64   `json:"acertos"`
	Aproveitamento float64 `json:"aproveitamento"`
}

// StartSimulado samples n random questions across the given questionarios
// and opens an exam session. When fewer than n questions exist, the run
// covers all of them. Simulado answers are never recorded as respostas.
func (s *Service) StartSimulado(ctx context.Context, questionarioIDs []string, n int) (*domain.SimuladoSession, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be at least 1", domain.ErrValidation)
	}
	if len(questionarioIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one questionario is required", domain.ErrValidation)
	}

	oids := make([]primitive.ObjectID, len(questionarioIDs))
	for i, id := range questionarioIDs {
		oid, err := parseQuestionarioID(id)
		if err != nil {
			return nil, err
		}
		if _, err := s.questionarios.GetByID(ctx, oid); err != nil {
			return nil, err
		}
		oids[i] = oid
	}

	available, err := s.questoes.CountByQuestionarios(ctx, oids)
	if err != nil {
		return nil, err
	}
	if available == 0 {
		return nil, fmt.Errorf("%w: selected questionarios have no questoes", domain.ErrValidation)
	}
	if int64(n) > available {
		n = int(available)
	}

	questoes, err := s.questoes.SampleByQuestionarios(ctx, oids, n)
	if err != nil {
		return nil, err
	}

	questaoIDs := make([]string, len(questoes))
	for i, q := range questoes {
		questaoIDs[i] = q.ID.Hex()
	}

	id := uuid.New()
	if err := s.simulados.Create(ctx, id, questaoIDs); err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("simulado").Inc()

	logging.WithSession(id.String()).Info("Simulado started", "total", len(questaoIDs))
	return s.simulados.Get(ctx, id)
}

func (s *Service) SimuladoState(ctx context.Context, id uuid.UUID) (*domain.SimuladoSession, error) {
	return s.simulados.Get(ctx, id)
}

// CurrentSimuladoQuestao returns the question at the session cursor, or nil
// when the run is finished.
func (s *Service) CurrentSimuladoQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error) {
	qid, err := s.simulados.Current(ctx, id)
	if err != nil {
		return nil, err
	}
	if qid == "" {
		return nil, nil
	}
	return s.GetQuestao(ctx, qid)
}

// AnswerSimulado grades the current question and moves the cursor forward.
func (s *Service) AnswerSimulado(ctx context.Context, id uuid.UUID, answer string) (*Feedback, *domain.SimuladoSession, error) {
	qid, err := s.simulados.Current(ctx, id)
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

	if err := s.simulados.RecordAnswer(ctx, id, correct); err != nil {
		return nil, nil, err
	}
	metrics.RecordAnswer("simulado", correct)

	sess, err := s.simulados.Get(ctx, id)
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

// SimuladoResultFor summarises a session's score.
func (s *Service) SimuladoResultFor(ctx context.Context, id uuid.UUID) (*SimuladoResult, error) {
	sess, err := s.simulados.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &SimuladoResult{Total: sess.Total, Acertos: sess.Acertos}
	if sess.Total > 0 {
		result.Aproveitamento = float64(sess.Acertos) / float64(sess.Total) * 100
	}
	return result, nil
}

func (s *Service) StopSimulado(ctx context.Context, id uuid.UUID) error {
	if _, err := s.simulados.Get(ctx, id); err != nil {
		return err
	}
	return s.simulados.Delete(ctx, id)
}
