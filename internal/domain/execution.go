package domain

// PlaceOrderRequest es una orden BUY limit para una pata del arbitraje.
type PlaceOrderRequest struct {
	PairID  string // correlaciona las dos patas del mismo trade
	TokenID string
	Price   float64
	Size    float64 // notional en USDC
	Label   string  // "UP" | "DOWN", solo para logs
}

// PlacedOrder es la confirmación de fill devuelta por el CLOB.
type PlacedOrder struct {
	OrderID string
	Status  string
}

// LegResult es el resultado independiente de una pata.
type LegResult struct {
	OrderID string
	Err     error
}

// Filled devuelve true si la pata obtuvo confirmación de fill.
func (r LegResult) Filled() bool {
	return r.Err == nil && r.OrderID != ""
}

// ExecutionResult es el resultado transitorio de un intento de ejecución.
// El trade es exitoso solo si ambas patas confirman fill; una pata suelta
// queda como posición sin cobertura que requiere intervención manual.
type ExecutionResult struct {
	PairID string
	Up     LegResult
	Down   LegResult
}

// Success devuelve true si ambas patas se ejecutaron.
func (r ExecutionResult) Success() bool {
	return r.Up.Filled() && r.Down.Filled()
}

// Partial devuelve true si exactamente una pata se ejecutó.
func (r ExecutionResult) Partial() bool {
	return r.Up.Filled() != r.Down.Filled()
}
