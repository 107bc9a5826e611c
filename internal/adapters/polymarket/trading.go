package polymarket

// trading.go: envío real de órdenes al CLOB.
//
// Implementa ports.OrderExecutor. Todas las órdenes son BUY limit al precio
// cotizado; el matching con el ask existente las convierte en taker fills.

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

const orderPath = "/order"

// TradingClient implementa ports.OrderExecutor contra el CLOB.
type TradingClient struct {
	client *Client
	creds  Creds
}

// NewTradingClient crea un TradingClient con las credenciales dadas.
func NewTradingClient(client *Client, creds Creds) (*TradingClient, error) {
	if !creds.Valid() {
		return nil, fmt.Errorf("polymarket.NewTradingClient: missing CLOB credentials")
	}
	return &TradingClient{client: client, creds: creds}, nil
}

// PlaceOrder envía una orden BUY al CLOB y devuelve la confirmación de fill.
func (tc *TradingClient) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlacedOrder, error) {
	body := orderRequest{
		TokenID: req.TokenID,
		Price:   req.Price,
		Size:    req.Size,
		Side:    "BUY",
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: marshal: %w", err)
	}
	headers, err := l2Headers(tc.creds, http.MethodPost, orderPath, string(raw))
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: %w", err)
	}

	var resp orderResponse
	url := tc.client.clobBase + orderPath
	if err := tc.client.post(ctx, tc.client.ordersLimiter, url, headers, body, &resp); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("place order: post: %w", err)
	}

	if !resp.Success || resp.ErrorMsg != "" {
		return domain.PlacedOrder{}, fmt.Errorf("place order: clob error: %s", resp.ErrorMsg)
	}
	if resp.OrderID == "" {
		return domain.PlacedOrder{}, fmt.Errorf("place order: clob returned no order id")
	}

	slog.Info("order placed",
		"pair_id", req.PairID,
		"leg", req.Label,
		"size", fmt.Sprintf("%.4f", req.Size),
		"price", fmt.Sprintf("%.3f", req.Price),
		"order_id", truncID(resp.OrderID),
	)

	return domain.PlacedOrder{OrderID: resp.OrderID, Status: resp.Status}, nil
}

// truncID acorta un order ID para los logs.
func truncID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
