package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	api := s.echo.Group("/api")

	// Questionarios
	api.GET("/questionarios", s.handleListQuestionarios)
	api.POST("/questionarios", s.handleCreateQuestionario)
	api.GET("/questionarios/:id", s.handleGetQuestionario)
	api.DELETE("/questionarios/:id", s.handleDeleteQuestionario)
	api.GET("/questionarios/:id/desempenho", s.handleDesempenho)
	api.GET("/questionarios/:id/questoes", s.handleListQuestoes)
	api.POST("/questionarios/:id/questoes", s.handleAddQuestao)

	// Questoes
	api.PATCH("/questoes/:id/explicacao", s.handleUpdateExplicacao)
	api.POST("/questoes/:id/favoritar", s.handleFavoritar)

	// CSV import
	api.POST("/import", s.handleImport)

	// Practice sessions
	api.POST("/practice", s.handleStartPractice)
	api.GET("/practice/:id", s.handlePracticeState)
	api.POST("/practice/:id/answer", s.handleAnswerPractice)
	api.POST("/practice/:id/skip", s.handleSkipPractice)
	api.DELETE("/practice/:id", s.handleStopPractice)

	// Simulados
	api.POST("/simulados", s.handleStartSimulado)
	api.GET("/simulados/:id", s.handleSimuladoState)
	api.POST("/simulados/:id/answer", s.handleAnswerSimulado)
	api.DELETE("/simulados/:id", s.handleStopSimulado)
}
