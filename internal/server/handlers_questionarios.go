package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createQuestionarioRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

func (s *Server) handleListQuestionarios(c echo.Context) error {
	questionarios, err := s.app.ListQuestionarios(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, questionarios)
}

func (s *Server) handleCreateQuestionario(c echo.Context) error {
	var req createQuestionarioRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	questionario, err := s.app.CreateQuestionario(c.Request().Context(), req.Nome, req.Descricao)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, questionario)
}

func (s *Server) handleGetQuestionario(c echo.Context) error {
	questionario, err := s.app.GetQuestionario(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, questionario)
}

func (s *Server) handleDeleteQuestionario(c echo.Context) error {
	if err := s.app.DeleteQuestionario(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDesempenho(c echo.Context) error {
	desempenho, err := s.app.Desempenho(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, desempenho)
}
