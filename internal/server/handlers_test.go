package server

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hamiltonbss/qapp/internal/app"
	"github.com/hamiltonbss/qapp/internal/config"
	"github.com/hamiltonbss/qapp/internal/domain"
)

// --- Mock service ---

type mockService struct {
	listQuestionariosFn  func(ctx context.Context) ([]domain.Questionario, error)
	getQuestionarioFn    func(ctx context.Context, id string) (*domain.Questionario, error)
	createQuestionarioFn func(ctx context.Context, nome, descricao string) (*domain.Questionario, error)
	deleteQuestionarioFn func(ctx context.Context, id string) error
	desempenhoFn         func(ctx context.Context, id string) (*domain.Desempenho, error)

	listQuestoesFn     func(ctx context.Context, questionarioID string) ([]domain.Questao, error)
	addQuestaoVFFn     func(ctx context.Context, questionarioID, texto, correta, explicacao string, tags []string) (*domain.Questao, error)
	addQuestaoMCFn     func(ctx context.Context, questionarioID, texto string, alternativas []string, correta, explicacao string, tags []string) (*domain.Questao, error)
	updateExplicacaoFn func(ctx context.Context, questaoID, explicacao string) error
	favoritarFn        func(ctx context.Context, questaoID string) (*domain.Questao, error)

	importCSVFn func(ctx context.Context, r io.Reader) (*app.ImportReport, error)

	startPracticeFn          func(ctx context.Context, questionarioID string) (*domain.PracticeSession, error)
	practiceStateFn          func(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error)
	currentPracticeQuestaoFn func(ctx context.Context, id uuid.UUID) (*domain.Questao, error)
	answerPracticeFn         func(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.PracticeSession, error)
	skipPracticeFn           func(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error)
	stopPracticeFn           func(ctx context.Context, id uuid.UUID) error

	startSimuladoFn          func(ctx context.Context, questionarioIDs []string, n int) (*domain.SimuladoSession, error)
	simuladoStateFn          func(ctx context.Context, id uuid.UUID) (*domain.SimuladoSession, error)
	currentSimuladoQuestaoFn func(ctx context.Context, id uuid.UUID) (*domain.Questao, error)
	answerSimuladoFn         func(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.SimuladoSession, error)
	simuladoResultForFn      func(ctx context.Context, id uuid.UUID) (*app.SimuladoResult, error)
	stopSimuladoFn           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockService) ListQuestionarios(ctx context.Context) ([]domain.Questionario, error) {
	if m.listQuestionariosFn != nil {
		return m.listQuestionariosFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) GetQuestionario(ctx context.Context, id string) (*domain.Questionario, error) {
	if m.getQuestionarioFn != nil {
		return m.getQuestionarioFn(ctx, id)
	}
	return nil, domain.ErrQuestionarioNotFound
}

func (m *mockService) CreateQuestionario(ctx context.Context, nome, descricao string) (*domain.Questionario, error) {
	if m.createQuestionarioFn != nil {
		return m.createQuestionarioFn(ctx, nome, descricao)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) DeleteQuestionario(ctx context.Context, id string) error {
	if m.deleteQuestionarioFn != nil {
		return m.deleteQuestionarioFn(ctx, id)
	}
	return nil
}

func (m *mockService) Desempenho(ctx context.Context, id string) (*domain.Desempenho, error) {
	if m.desempenhoFn != nil {
		return m.desempenhoFn(ctx, id)
	}
	return &domain.Desempenho{}, nil
}

func (m *mockService) ListQuestoes(ctx context.Context, questionarioID string) ([]domain.Questao, error) {
	if m.listQuestoesFn != nil {
		return m.listQuestoesFn(ctx, questionarioID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) AddQuestaoVF(ctx context.Context, questionarioID, texto, correta, explicacao string, tags []string) (*domain.Questao, error) {
	if m.addQuestaoVFFn != nil {
		return m.addQuestaoVFFn(ctx, questionarioID, texto, correta, explicacao, tags)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) AddQuestaoMC(ctx context.Context, questionarioID, texto string, alternativas []string, correta, explicacao string, tags []string) (*domain.Questao, error) {
	if m.addQuestaoMCFn != nil {
		return m.addQuestaoMCFn(ctx, questionarioID, texto, alternativas, correta, explicacao, tags)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) UpdateExplicacao(ctx context.Context, questaoID, explicacao string) error {
	if m.updateExplicacaoFn != nil {
		return m.updateExplicacaoFn(ctx, questaoID, explicacao)
	}
	return nil
}

func (m *mockService) Favoritar(ctx context.Context, questaoID string) (*domain.Questao, error) {
	if m.favoritarFn != nil {
		return m.favoritarFn(ctx, questaoID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) ImportCSV(ctx context.Context, r io.Reader) (*app.ImportReport, error) {
	if m.importCSVFn != nil {
		return m.importCSVFn(ctx, r)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) StartPractice(ctx context.Context, questionarioID string) (*domain.PracticeSession, error) {
	if m.startPracticeFn != nil {
		return m.startPracticeFn(ctx, questionarioID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) PracticeState(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	if m.practiceStateFn != nil {
		return m.practiceStateFn(ctx, id)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *mockService) CurrentPracticeQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error) {
	if m.currentPracticeQuestaoFn != nil {
		return m.currentPracticeQuestaoFn(ctx, id)
	}
	return nil, nil
}

func (m *mockService) AnswerPractice(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.PracticeSession, error) {
	if m.answerPracticeFn != nil {
		return m.answerPracticeFn(ctx, id, answer)
	}
	return nil, nil, fmt.Errorf("not implemented")
}

func (m *mockService) SkipPractice(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	if m.skipPracticeFn != nil {
		return m.skipPracticeFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) StopPractice(ctx context.Context, id uuid.UUID) error {
	if m.stopPracticeFn != nil {
		return m.stopPracticeFn(ctx, id)
	}
	return nil
}

func (m *mockService) StartSimulado(ctx context.Context, questionarioIDs []string, n int) (*domain.SimuladoSession, error) {
	if m.startSimuladoFn != nil {
		return m.startSimuladoFn(ctx, questionarioIDs, n)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) SimuladoState(ctx context.Context, id uuid.UUID) (*domain.SimuladoSession, error) {
	if m.simuladoStateFn != nil {
		return m.simuladoStateFn(ctx, id)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *mockService) CurrentSimuladoQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error) {
	if m.currentSimuladoQuestaoFn != nil {
		return m.currentSimuladoQuestaoFn(ctx, id)
	}
	return nil, nil
}

func (m *mockService) AnswerSimulado(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.SimuladoSession, error) {
	if m.answerSimuladoFn != nil {
		return m.answerSimuladoFn(ctx, id, answer)
	}
	return nil, nil, fmt.Errorf("not implemented")
}

func (m *mockService) SimuladoResultFor(ctx context.Context, id uuid.UUID) (*app.SimuladoResult, error) {
	if m.simuladoResultForFn != nil {
		return m.simuladoResultForFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockService) StopSimulado(ctx context.Context, id uuid.UUID) error {
	if m.stopSimuladoFn != nil {
		return m.stopSimuladoFn(ctx, id)
	}
	return nil
}

// --- Health check mocks ---

type mockMongoChecker struct {
	err error
}

func (m *mockMongoChecker) HealthCheck(_ context.Context) error { return m.err }

type mockRedisChecker struct {
	err error
}

func (m *mockRedisChecker) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
	}
	return cmd
}

// --- Test server ---

func newTestServer(t *testing.T, svc quizService) *Server {
	t.Helper()
	cfg := &config.Config{AppEnv: "test", Port: "8080"}
	return NewServer(cfg, svc, &mockMongoChecker{}, &mockRedisChecker{})
}
