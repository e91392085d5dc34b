package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hamiltonbss/qapp/internal/app"
	"github.com/hamiltonbss/qapp/internal/domain"
)

type startSimuladoRequest struct {
	QuestionarioIDs []string `json:"questionario_ids"`
	N               int      `json:"n"`
}

// simuladoStateResponse carries the cursor state, the current question, and,
// once the run is finished, the final result.
type simuladoStateResponse struct {
	Session *domain.SimuladoSession `json:"session"`
	Questao *questaoView            `json:"questao,omitempty"`
	Result  *app.SimuladoResult     `json:"result,omitempty"`
}

func (s *Server) handleStartSimulado(c echo.Context) error {
	var req startSimuladoRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess, err := s.app.StartSimulado(ctx, req.QuestionarioIDs, req.N)
	if err != nil {
		return mapDomainError(err)
	}

	questao, err := s.app.CurrentSimuladoQuestao(ctx, sess.ID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, simuladoStateResponse{Session: sess, Questao: newQuestaoView(questao)})
}

func (s *Server) handleSimuladoState(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess, err := s.app.SimuladoState(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}

	resp := simuladoStateResponse{Session: sess}
	if sess.Finished() {
		if resp.Result, err = s.app.SimuladoResultFor(ctx, id); err != nil {
			return mapDomainError(err)
		}
	} else {
		questao, err := s.app.CurrentSimuladoQuestao(ctx, id)
		if err != nil {
			return mapDomainError(err)
		}
		resp.Questao = newQuestaoView(questao)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAnswerSimulado(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	feedback, sess, err := s.app.AnswerSimulado(ctx, id, req.Resposta)
	if err != nil {
		return mapDomainError(err)
	}

	resp := map[string]any{
		"feedback": feedback,
		"session":  sess,
	}
	if sess.Finished() {
		result, err := s.app.SimuladoResultFor(ctx, id)
		if err != nil {
			return mapDomainError(err)
		}
		resp["result"] = result
	} else {
		questao, err := s.app.CurrentSimuladoQuestao(ctx, id)
		if err != nil {
			return mapDomainError(err)
		}
		resp["questao"] = newQuestaoView(questao)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStopSimulado(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	if err := s.app.StopSimulado(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
