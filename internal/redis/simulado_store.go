package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hamiltonbss/qapp/internal/domain"
)

const (
	// Redis hash field names for simulado session keys.
	fieldTotal   = "total"
	fieldIndex   = "idx"
	fieldAcertos = "acertos"
)

type SimuladoRepo struct {
	rdb   *goredis.Client
	clock clockwork.Clock
}

func NewSimuladoRepo(rdb *goredis.Client, clock clockwork.Clock) *SimuladoRepo {
	return &SimuladoRepo{rdb: rdb, clock: clock}
}

func (s *SimuladoRepo) Create(ctx context.Context, id uuid.UUID, questaoIDs []string) error {
	sk := simuladoKey(id)
	qk := simuladoQuestoesKey(id)
	now := strconv.FormatInt(s.clock.Now().UnixMilli(), 10)

	args := make([]any, len(questaoIDs))
	for i, qid := range questaoIDs {
		args[i] = qid
	}

	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, sk, map[string]any{
		fieldTotal:     strconv.Itoa(len(questaoIDs)),
		fieldIndex:     "0",
		fieldAcertos:   "0",
		fieldCreatedAt: now,
	})
	pipe.RPush(ctx, qk, args...)
	pipe.Expire(ctx, sk, sessionTTL)
	pipe.Expire(ctx, qk, sessionTTL)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create simulado session: %w", err)
	}
	return nil
}

func (s *SimuladoRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SimuladoSession, error) {
	fields, err := s.rdb.HGetAll(ctx, simuladoKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read simulado session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	total, err := strconv.ParseInt(fields[fieldTotal], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt total counter: %w", err)
	}
	idx, err := strconv.ParseInt(fields[fieldIndex], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt index counter: %w", err)
	}
	acertos, err := strconv.ParseInt(fields[fieldAcertos], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt acertos counter: %w", err)
	}

	return &domain.SimuladoSession{
		ID:      id,
		Total:   total,
		Index:   idx,
		Acertos: acertos,
	}, nil
}

func (s *SimuladoRepo) Current(ctx context.Context, id uuid.UUID) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if sess.Finished() {
		return "", nil
	}

	qid, err := s.rdb.LIndex(ctx, simuladoQuestoesKey(id), sess.Index).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read simulado questions: %w", err)
	}
	return qid, nil
}

func (s *SimuladoRepo) RecordAnswer(ctx context.Context, id uuid.UUID, correct bool) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess.Finished() {
		return domain.ErrSessionFinished
	}

	sk := simuladoKey(id)
	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, sk, fieldIndex, 1)
	if correct {
		pipe.HIncrBy(ctx, sk, fieldAcertos, 1)
	}
	pipe.Expire(ctx, sk, sessionTTL)
	pipe.Expire(ctx, simuladoQuestoesKey(id), sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record simulado answer: %w", err)
	}
	return nil
}

func (s *SimuladoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pipe := s.rdb.Pipeline()
	pipe.Del(ctx, simuladoKey(id))
	pipe.Del(ctx, simuladoQuestoesKey(id))
	_, err := pipe.Exec(ctx)
	return err
}

func simuladoKey(id uuid.UUID) string {
	return "simulado:" + id.String()
}

func simuladoQuestoesKey(id uuid.UUID) string {
	return "simulado:" + id.String() + ":questoes"
}

var (
	_ domain.PracticeStore = (*PracticeRepo)(nil)
	_ domain.SimuladoStore = (*SimuladoRepo)(nil)
)
