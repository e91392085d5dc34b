package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
	"github.com/hamiltonbss/qapp/internal/importer"
	"github.com/hamiltonbss/qapp/internal/logging"
	"github.com/hamiltonbss/qapp/internal/metrics"
)

// ImportReport summarises a CSV import: how many rows landed, which lines
// failed, and how many questions each questionario gained.
type ImportReport struct {
	Imported int            `json:"imported"`
	Errors   []string       `json:"errors,omitempty"`
	Impacto  map[string]int `json:"impacto"`
}

// ImportCSV parses and persists a CSV upload. Questionarios referenced by
// name are created on demand. Rows fail independently; a bad header rejects
// the whole upload.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error) {
	parsed, err := importer.Parse(r)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("rejected").Inc()
		logging.WithError(err).Warn("CSV import rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	report := &ImportReport{
		Errors:  parsed.Errors,
		Impacto: make(map[string]int),
	}

	// Questionarios are resolved once per name within an upload.
	ids := make(map[string]primitive.ObjectID)
	for _, row := range parsed.Rows {
		oid, ok := ids[row.Questionario]
		if !ok {
			questionario, err := s.EnsureQuestionario(ctx, row.Questionario)
			if err != nil {
				return nil, fmt.Errorf("failed to ensure questionario %q: %w", row.Questionario, err)
			}
			oid = questionario.ID
			ids[row.Questionario] = oid
		}

		questao := row.Questao
		questao.QuestionarioID = oid
		if _, err := s.questoes.Insert(ctx, &questao); err != nil {
			return nil, fmt.Errorf("failed to insert questao: %w", err)
		}
		report.Imported++
		report.Impacto[row.Questionario]++
	}

	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	metrics.ImportRowsTotal.WithLabelValues("imported").Add(float64(report.Imported))
	metrics.ImportRowsTotal.WithLabelValues("failed").Add(float64(len(report.Errors)))

	slog.Info("CSV import finished",
		"imported", report.Imported,
		"failed", len(report.Errors),
		"questionarios", len(report.Impacto),
	)
	return report, nil
}
