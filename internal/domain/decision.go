package domain

// TradeDecision es la salida inmutable del decision engine para una
// oportunidad y un snapshot de capital.
type TradeDecision struct {
	Execute      bool
	SizeUp       float64 // USDC a gastar en la pata UP
	SizeDown     float64 // USDC a gastar en la pata DOWN
	NetProfitEst float64
	Reason       string // siempre poblado, también en rechazos
}

// Reject construye una decisión no ejecutable con tamaños en cero.
func Reject(reason string) TradeDecision {
	return TradeDecision{Execute: false, Reason: reason}
}
