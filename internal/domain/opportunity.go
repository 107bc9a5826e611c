package domain

// Opportunity es el resultado inmutable de un ciclo de escaneo: un mercado
// Up/Down cuyos mejores asks suman menos de $1.00.
type Opportunity struct {
	ConditionID string
	Question    string
	TokenIDUp   string
	TokenIDDown string
	PriceUp     float64
	PriceDown   float64
	Spread      float64 // 1.0 - (PriceUp + PriceDown), ganancia bruta por $1
}

// NewOpportunity construye una Opportunity calculando el spread.
func NewOpportunity(m Market, up, down Token, priceUp, priceDown float64) Opportunity {
	return Opportunity{
		ConditionID: m.ConditionID,
		Question:    m.Question,
		TokenIDUp:   up.TokenID,
		TokenIDDown: down.TokenID,
		PriceUp:     priceUp,
		PriceDown:   priceDown,
		Spread:      1.0 - (priceUp + priceDown),
	}
}

// Viable devuelve true si el spread es positivo (arbitraje antes de fees).
func (o Opportunity) Viable() bool {
	return o.Spread > 0
}
