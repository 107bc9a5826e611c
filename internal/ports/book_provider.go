package ports

import "context"

// BookProvider obtiene el mejor ask de un token desde el orderbook del CLOB.
type BookProvider interface {
	// FetchBestAsk devuelve el menor precio ask para el token dado.
	// Devuelve ok=false si el book está vacío.
	FetchBestAsk(ctx context.Context, tokenID string) (price float64, ok bool, err error)
}
