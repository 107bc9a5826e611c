package domain

import "strconv"

// OrderBook representa el libro de órdenes de un token.
// Para la detección de arbitraje solo importan los asks.
type OrderBook struct {
	TokenID string
	Asks    []BookEntry
}

// BookEntry es un nivel de precio en el orderbook.
type BookEntry struct {
	Price float64
	Size  float64
}

// BestAsk devuelve el mejor precio de venta (menor ask).
// Devuelve 0 y ok=false si el book está vacío.
func (ob OrderBook) BestAsk() (float64, bool) {
	if len(ob.Asks) == 0 {
		return 0, false
	}
	best := ob.Asks[0].Price
	for _, a := range ob.Asks[1:] {
		if a.Price < best {
			best = a.Price
		}
	}
	return best, true
}

// ParsePrice convierte un string de precio de la API a float64.
func ParsePrice(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
