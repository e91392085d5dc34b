package domain

import (
	"fmt"
	"strings"
)

// truthy values accepted for VF answers and gabaritos, lowercased.
var truthy = map[string]struct{}{
	"v": {}, "true": {}, "t": {}, "1": {}, "sim": {}, "s": {}, "verdadeiro": {},
}

// NormalizeBool interprets a VF value ("V", "F", "true", "sim", ...).
func NormalizeBool(val string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(val))]
	return ok
}

// ResolveCorretaMC normalizes the correct answer of an MC question to a
// letter. Accepts a letter A..E within range, or the exact text of one of the
// alternatives (case-insensitive).
func ResolveCorretaMC(alternativas []string, correta string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(correta))
	if len(c) == 1 {
		if idx := strings.Index(Letters, c); idx >= 0 && idx < len(alternativas) {
			return c, nil
		}
	}
	for i, alt := range alternativas {
		if strings.EqualFold(strings.TrimSpace(alt), strings.TrimSpace(correta)) {
			return string(Letters[i]), nil
		}
	}
	return "", fmt.Errorf("correta %q does not match a letter or alternative", correta)
}

// Grade checks an answer against a question's gabarito.
// For VF questions the answer is interpreted with NormalizeBool; for MC it
// is a letter A..E or the exact text of an alternative.
func (q *Questao) Grade(answer string) (bool, error) {
	switch q.Tipo {
	case TipoVF:
		gabarito := q.CorretaText == "V"
		return NormalizeBool(answer) == gabarito, nil
	case TipoMC:
		letter, err := ResolveCorretaMC(q.Alternativas, answer)
		if err != nil {
			return false, fmt.Errorf("invalid answer: %w", err)
		}
		return strings.EqualFold(letter, q.CorretaText), nil
	default:
		return false, fmt.Errorf("unknown questao tipo %q", q.Tipo)
	}
}
