package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hamiltonbss/qapp/internal/app"
	"github.com/hamiltonbss/qapp/internal/config"
	"github.com/hamiltonbss/qapp/internal/domain"
	apperrors "github.com/hamiltonbss/qapp/internal/errors"
	"github.com/hamiltonbss/qapp/internal/metrics"
)

// quizService is the application surface the handlers depend on.
type quizService interface {
	ListQuestionarios(ctx context.Context) ([]domain.Questionario, error)
	GetQuestionario(ctx context.Context, id string) (*domain.Questionario, error)
	CreateQuestionario(ctx context.Context, nome, descricao string) (*domain.Questionario, error)
	DeleteQuestionario(ctx context.Context, id string) error
	Desempenho(ctx context.Context, id string) (*domain.Desempenho, error)

	ListQuestoes(ctx context.Context, questionarioID string) ([]domain.Questao, error)
	AddQuestaoVF(ctx context.Context, questionarioID, texto, correta, explicacao string, tags []string) (*domain.Questao, error)
	AddQuestaoMC(ctx context.Context, questionarioID, texto string, alternativas []string, correta, explicacao string, tags []string) (*domain.Questao, error)
	UpdateExplicacao(ctx context.Context, questaoID, explicacao string) error
	Favoritar(ctx context.Context, questaoID string) (*domain.Questao, error)

	ImportCSV(ctx context.Context, r io.Reader) (*app.ImportReport, error)

	StartPractice(ctx context.Context, questionarioID string) (*domain.PracticeSession, error)
	PracticeState(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error)
	CurrentPracticeQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error)
	AnswerPractice(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.PracticeSession, error)
	SkipPractice(ctx context.Context, id uuid.UUID) (*domain.PracticeSession, error)
	StopPractice(ctx context.Context, id uuid.UUID) error

	StartSimulado(ctx context.Context, questionarioIDs []string, n int) (*domain.SimuladoSession, error)
	SimuladoState(ctx context.Context, id uuid.UUID) (*domain.SimuladoSession, error)
	CurrentSimuladoQuestao(ctx context.Context, id uuid.UUID) (*domain.Questao, error)
	AnswerSimulado(ctx context.Context, id uuid.UUID, answer string) (*app.Feedback, *domain.SimuladoSession, error)
	SimuladoResultFor(ctx context.Context, id uuid.UUID) (*app.SimuladoResult, error)
	StopSimulado(ctx context.Context, id uuid.UUID) error
}

// mongoHealthChecker is a minimal interface for Mongo health checks
type mongoHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// redisHealthChecker is a minimal interface for Redis health checks
type redisHealthChecker interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       quizService
	mongo     mongoHealthChecker
	redis     redisHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app quizService, mongo mongoHealthChecker, redis redisHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(requestMetrics())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		mongo:     mongo,
		redis:     redis,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestMetrics records request latency per route. It runs outside the
// error middleware so the observed status is the one actually sent.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.
				WithLabelValues(c.Request().Method, c.Path(), status).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
