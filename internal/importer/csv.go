// Package importer parses CSV uploads into questions ready for persistence.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hamiltonbss/qapp/internal/domain"
)

// Columns recognised in the header, case-insensitive.
const (
	colTipo         = "tipo"
	colQuestionario = "questionario"
	colTexto        = "texto"
	colCorreta      = "correta"
	colExplicacao   = "explicacao"
	colAlternativas = "alternativas"
	colTags         = "tags"
)

var requiredColumns = []string{colTipo, colQuestionario, colTexto, colCorreta}

// Row is one successfully parsed CSV line. The questao carries no IDs yet;
// the questionario is referenced by name and created on demand.
type Row struct {
	Questionario string
	Questao      domain.Questao
}

// Result collects parsed rows and per-line error strings. Lines are counted
// from 1 including the header, matching what a user sees in a spreadsheet.
type Result struct {
	Rows   []Row
	Errors []string
}

// Parse reads a whole CSV document. The delimiter is detected by parsing the
// header with each candidate and keeping the one that yields the required
// columns, so quoted cells containing the other separator do not confuse it.
// A header missing any of the required columns fails the whole import;
// everything after that is a per-line error in Result.Errors.
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv body: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		row, err := parseRow(cols, record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Rows = append(result.Rows, *row)
	}

	return result, nil
}

// detectDelimiter parses the header with each candidate delimiter and keeps
// the first one that produces all required columns. Semicolon is tried first
// since it is the common choice in pt-BR spreadsheets. When neither candidate
// yields a valid header, the one splitting the header line into more fields
// wins, so the missing-columns error reflects the likelier delimiter.
func detectDelimiter(data []byte) rune {
	for _, comma := range []rune{';', ','} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = comma
		reader.TrimLeadingSpace = true
		header, err := reader.Read()
		if err != nil {
			continue
		}
		if _, err := indexHeader(header); err == nil {
			return comma
		}
	}

	line, _, _ := strings.Cut(string(data), "\n")
	if strings.Count(line, ";") >= strings.Count(line, ",") && strings.Contains(line, ";") {
		return ';'
	}
	return ','
}

func indexHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(cols map[string]int, record []string) (*Row, error) {
	get := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	questionario := get(colQuestionario)
	if questionario == "" {
		return nil, fmt.Errorf("questionario is empty")
	}

	texto := get(colTexto)
	if texto == "" {
		return nil, fmt.Errorf("texto is empty")
	}

	q := domain.Questao{
		Texto:      texto,
		Explicacao: get(colExplicacao),
		Tags:       splitList(get(colTags), ";", ","),
	}

	tipo := strings.ToUpper(get(colTipo))
	correta := get(colCorreta)
	switch tipo {
	case domain.TipoVF:
		q.Tipo = domain.TipoVF
		if domain.NormalizeBool(correta) {
			q.CorretaText = "V"
		} else {
			q.CorretaText = "F"
		}
	case domain.TipoMC:
		q.Tipo = domain.TipoMC
		q.Alternativas = splitList(get(colAlternativas), ";", "|")
		if len(q.Alternativas) < 2 {
			return nil, fmt.Errorf("MC questao needs at least 2 alternativas")
		}
		if len(q.Alternativas) > domain.MaxAlternativas {
			return nil, fmt.Errorf("MC questao allows at most %d alternativas", domain.MaxAlternativas)
		}
		letter, err := domain.ResolveCorretaMC(q.Alternativas, correta)
		if err != nil {
			return nil, err
		}
		q.CorretaText = letter
	default:
		return nil, fmt.Errorf("unknown tipo %q", get(colTipo))
	}

	return &Row{Questionario: questionario, Questao: q}, nil
}

// splitList splits a cell on the first separator found in it, trimming items
// and dropping empties.
func splitList(val string, seps ...string) []string {
	if val == "" {
		return nil
	}
	sep := seps[0]
	for _, s := range seps {
		if strings.Contains(val, s) {
			sep = s
			break
		}
	}
	var items []string
	for _, item := range strings.Split(val, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
