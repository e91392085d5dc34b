package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hamiltonbss/qapp/internal/domain"
	apperrors "github.com/hamiltonbss/qapp/internal/errors"
)

type addQuestaoRequest struct {
	Tipo         string   `json:"tipo"`
	Texto        string   `json:"texto"`
	Alternativas []string `json:"alternativas"`
	Correta      string   `json:"correta"`
	Explicacao   string   `json:"explicacao"`
	Tags         []string `json:"tags"`
}

type updateExplicacaoRequest struct {
	Explicacao string `json:"explicacao"`
}

func (s *Server) handleListQuestoes(c echo.Context) error {
	questoes, err := s.app.ListQuestoes(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, questoes)
}

func (s *Server) handleAddQuestao(c echo.Context) error {
	var req addQuestaoRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	questionarioID := c.Param("id")

	var questao *domain.Questao
	var err error
	switch strings.ToUpper(req.Tipo) {
	case domain.TipoVF:
		questao, err = s.app.AddQuestaoVF(ctx, questionarioID, req.Texto, req.Correta, req.Explicacao, req.Tags)
	case domain.TipoMC:
		questao, err = s.app.AddQuestaoMC(ctx, questionarioID, req.Texto, req.Alternativas, req.Correta, req.Explicacao, req.Tags)
	default:
		return apperrors.ValidationError("tipo must be VF or MC").WithContext("tipo", req.Tipo)
	}
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, questao)
}

func (s *Server) handleUpdateExplicacao(c echo.Context) error {
	var req updateExplicacaoRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := s.app.UpdateExplicacao(c.Request().Context(), c.Param("id"), req.Explicacao); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFavoritar(c echo.Context) error {
	questao, err := s.app.Favoritar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, questao)
}
