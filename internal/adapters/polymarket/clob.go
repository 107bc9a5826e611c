package polymarket

// clob.go: lectura de orderbooks del CLOB.
//
// El scanner pide el mejor ask de cada token con timeout corto: un book
// lento o vacío descarta ese mercado del ciclo sin afectar al resto.

import (
	"context"
	"fmt"
	"net/url"
)

const bookPath = "/book"

// FetchBestAsk devuelve el menor precio ask para el token dado.
// ok=false indica book vacío (mercado sin liquidez en ese lado).
func (c *Client) FetchBestAsk(ctx context.Context, tokenID string) (float64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, bookTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("token_id", tokenID)
	reqURL := c.clobBase + bookPath + "?" + q.Encode()

	var resp bookResponse
	if err := c.get(ctx, c.booksLimiter, reqURL, &resp); err != nil {
		return 0, false, fmt.Errorf("clob.FetchBestAsk: %w", err)
	}

	best, ok := mapBook(tokenID, resp).BestAsk()
	return best, ok, nil
}
