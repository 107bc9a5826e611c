package ports

import (
	"context"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

// OrderExecutor envía órdenes BUY al CLOB.
type OrderExecutor interface {
	// PlaceOrder firma y envía una orden limit taker.
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlacedOrder, error)
}
