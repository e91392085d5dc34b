package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
	apperrors "github.com/hamiltonbss/qapp/internal/errors"
)

type startPracticeRequest struct {
	QuestionarioID string `json:"questionario_id"`
}

type answerRequest struct {
	Resposta string `json:"resposta"`
}

// questaoView is the question as served during a running session. The
// explicacao stays hidden until the answer is graded, like the gabarito.
type questaoView struct {
	ID             primitive.ObjectID `json:"id"`
	QuestionarioID primitive.ObjectID `json:"questionario_id"`
	Tipo           string             `json:"tipo"`
	Texto          string             `json:"texto"`
	Alternativas   []string           `json:"alternativas,omitempty"`
	Tags           []string           `json:"tags,omitempty"`
}

func newQuestaoView(q *domain.Questao) *questaoView {
	if q == nil {
		return nil
	}
	return &questaoView{
		ID:             q.ID,
		QuestionarioID: q.QuestionarioID,
		Tipo:           q.Tipo,
		Texto:          q.Texto,
		Alternativas:   q.Alternativas,
		Tags:           q.Tags,
	}
}

// practiceStateResponse pairs the session counters with the current
// question. Questao is nil once the pool is exhausted.
type practiceStateResponse struct {
	Session *domain.PracticeSession `json:"session"`
	Questao *questaoView            `json:"questao,omitempty"`
}

func (s *Server) handleStartPractice(c echo.Context) error {
	var req startPracticeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess, err := s.app.StartPractice(ctx, req.QuestionarioID)
	if err != nil {
		return mapDomainError(err)
	}

	questao, err := s.app.CurrentPracticeQuestao(ctx, sess.ID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, practiceStateResponse{Session: sess, Questao: newQuestaoView(questao)})
}

func (s *Server) handlePracticeState(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess, err := s.app.PracticeState(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}

	questao, err := s.app.CurrentPracticeQuestao(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, practiceStateResponse{Session: sess, Questao: newQuestaoView(questao)})
}

func (s *Server) handleAnswerPractice(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	feedback, sess, err := s.app.AnswerPractice(ctx, id, req.Resposta)
	if err != nil {
		return mapDomainError(err)
	}

	questao, err := s.app.CurrentPracticeQuestao(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"feedback": feedback,
		"session":  sess,
		"questao":  newQuestaoView(questao),
	})
}

func (s *Server) handleSkipPractice(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess, err := s.app.SkipPractice(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}

	questao, err := s.app.CurrentPracticeQuestao(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, practiceStateResponse{Session: sess, Questao: newQuestaoView(questao)})
}

func (s *Server) handleStopPractice(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	if err := s.app.StopPractice(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseSessionID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid session ID").WithContext("id", raw)
	}
	return id, nil
}
