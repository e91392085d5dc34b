package domain

import (
	"context"

	"github.com/google/uuid"
)

// PracticeSession tracks progress through a shuffled pool of questions for a
// single questionario. Answered attempts are recorded as respostas.
type PracticeSession struct {
	ID             uuid.UUID `json:"session_id"`
	QuestionarioID string    `json:"questionario_id"`
	Remaining      int64     `json:"remaining"`
	Answered       int64     `json:"answered"`
	Correct        int64     `json:"correct"`
}

// Finished reports whether the pool is exhausted.
func (s *PracticeSession) Finished() bool { return s.Remaining == 0 }

// SimuladoSession is an exam run over questions sampled from one or more
// questionarios. Simulado answers are never recorded as respostas.
type SimuladoSession struct {
	ID      uuid.UUID `json:"session_id"`
	Total   int64     `json:"total"`
	Index   int64     `json:"index"`
	Acertos int64     `json:"acertos"`
}

func (s *SimuladoSession) Finished() bool { return s.Index >= s.Total }

// PracticeStore abstracts practice session state backed by Redis.
type PracticeStore interface {
	Create(ctx context.Context, id uuid.UUID, questionarioID string, pool []string) error
	Get(ctx context.Context, id uuid.UUID) (*PracticeSession, error)
	// Current returns the question at the top of the pool, or "" when the
	// pool is exhausted.
	Current(ctx context.Context, id uuid.UUID) (string, error)
	// Advance pops the current question. When answered is true the
	// answered counter increments, and correct additionally increments the
	// correct counter.
	Advance(ctx context.Context, id uuid.UUID, answered, correct bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SimuladoStore abstracts simulado session state backed by Redis.
type SimuladoStore interface {
	Create(ctx context.Context, id uuid.UUID, questaoIDs []string) error
	Get(ctx context.Context, id uuid.UUID) (*SimuladoSession, error)
	// Current returns the question at the session cursor, or "" when the
	// run is finished.
	Current(ctx context.Context, id uuid.UUID) (string, error)
	// RecordAnswer moves the cursor forward, incrementing acertos when
	// correct.
	RecordAnswer(ctx context.Context, id uuid.UUID, correct bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
