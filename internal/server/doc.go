// Package server exposes the HTTP API over echo: questionario and questao
// management, CSV import, practice/simulado sessions, and the observability
// endpoints.
package server
