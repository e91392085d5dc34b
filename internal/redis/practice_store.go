package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hamiltonbss/qapp/internal/domain"
)

// sessionTTL bounds abandoned sessions. Every write refreshes it.
const sessionTTL = 24 * time.Hour

const (
	// Redis hash field names for practice session keys.
	fieldQuestionarioID = "questionario_id"
	fieldAnswered       = "answered"
	fieldCorrect        = "correct"
	fieldCreatedAt      = "created_at"
)

type PracticeRepo struct {
	rdb   *goredis.Client
	clock clockwork.Clock
}

func NewPracticeRepo(rdb *goredis.Client, clock clockwork.Clock) *PracticeRepo {
	return &PracticeRepo{rdb: rdb, clock: clock}
}

func (p *PracticeRepo) Create(ctx context.Context, id uuid.UUID, questionarioID string, pool []string) error {
	sk := practiceKey(id)
	pk := practicePoolKey(id)
	now := strconv.FormatInt(p.clock.Now().UnixMilli(), 10)

	pipe := p.rdb.Pipeline()
	pipe.HSet(ctx, sk, map[string]any{
		fieldQuestionarioID: questionarioID,
		fieldAnswered:       "0",
		fieldCorrect:        "0",
		fieldCreatedAt:      now,
	})
	if len(pool) > 0 {
		args := make([]any, len(pool))
		for i, qid := range pool {
			args[i] = qid
		}
		pipe.RPush(ctx, pk, args...)
		pipe.Expire(ctx, pk, sessionTTL)
	}
	pipe.Expire(ctx, sk, sessionTTL)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create practice session: %w", err)
	}
	return nil
}

func (p *PracticeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	sk := practiceKey(id)

	fields, err := p.rdb.HGetAll(ctx, sk).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read practice session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	remaining, err := p.rdb.LLen(ctx, practicePoolKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read practice pool: %w", err)
	}

	answered, err := strconv.ParseInt(fields[fieldAnswered], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt answered counter: %w", err)
	}
	correct, err := strconv.ParseInt(fields[fieldCorrect], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt correct counter: %w", err)
	}

	return &domain.PracticeSession{
		ID:             id,
		QuestionarioID: fields[fieldQuestionarioID],
		Remaining:      remaining,
		Answered:       answered,
		Correct:        correct,
	}, nil
}

func (p *PracticeRepo) Current(ctx context.Context, id uuid.UUID) (string, error) {
	exists, err := p.rdb.Exists(ctx, practiceKey(id)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return "", domain.ErrSessionNotFound
	}

	qid, err := p.rdb.LIndex(ctx, practicePoolKey(id), 0).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read practice pool: %w", err)
	}
	return qid, nil
}

func (p *PracticeRepo) Advance(ctx context.Context, id uuid.UUID, answered, correct bool) error {
	sk := practiceKey(id)
	pk := practicePoolKey(id)

	exists, err := p.rdb.Exists(ctx, sk).Result()
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return domain.ErrSessionNotFound
	}

	pipe := p.rdb.Pipeline()
	pipe.LPop(ctx, pk)
	if answered {
		pipe.HIncrBy(ctx, sk, fieldAnswered, 1)
	}
	if correct {
		pipe.HIncrBy(ctx, sk, fieldCorrect, 1)
	}
	pipe.Expire(ctx, sk, sessionTTL)
	pipe.Expire(ctx, pk, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("failed to advance practice session: %w", err)
	}
	return nil
}

func (p *PracticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pipe := p.rdb.Pipeline()
	pipe.Del(ctx, practiceKey(id))
	pipe.Del(ctx, practicePoolKey(id))
	_, err := pipe.Exec(ctx)
	return err
}

func practiceKey(id uuid.UUID) string {
	return "practice:" + id.String()
}

func practicePoolKey(id uuid.UUID) string {
	return "practice:" + id.String() + ":pool"
}
