package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleImport accepts a CSV upload either as a multipart "file" field or as
// the raw request body.
func (s *Server) handleImport(c echo.Context) error {
	body := c.Request().Body

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return mapDomainError(err)
		}
		defer f.Close()
		body = f
	}

	report, err := s.app.ImportCSV(c.Request().Context(), body)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, report)
}
