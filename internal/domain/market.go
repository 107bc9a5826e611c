package domain

import "strings"

// Market representa un mercado de predicción binario Up/Down en Polymarket.
type Market struct {
	ConditionID string
	Question    string
	Tokens      []Token
}

// Token es uno de los dos lados del mercado (Up/Down).
type Token struct {
	TokenID string
	Outcome string // "Up" | "Down", la API no garantiza mayúsculas
}

// UpToken devuelve el token UP del mercado, con ok=false si no existe.
func (m Market) UpToken() (Token, bool) {
	return m.tokenByOutcome("UP")
}

// DownToken devuelve el token DOWN del mercado, con ok=false si no existe.
func (m Market) DownToken() (Token, bool) {
	return m.tokenByOutcome("DOWN")
}

func (m Market) tokenByOutcome(outcome string) (Token, bool) {
	for _, t := range m.Tokens {
		if strings.EqualFold(t.Outcome, outcome) {
			return t, true
		}
	}
	return Token{}, false
}

// TruncateQuestion devuelve la pregunta del mercado truncada a maxLen caracteres.
// Si la pregunta está vacía usa el conditionID como fallback.
func TruncateQuestion(question, conditionID string, maxLen int) string {
	q := question
	if q == "" {
		q = conditionID
	}
	if len(q) > maxLen {
		q = q[:maxLen]
	}
	return q
}
