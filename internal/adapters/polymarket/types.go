package polymarket

// DTOs raw de la API de Polymarket. Solo se usan dentro de este paquete.
// La conversión a domain entities se hace en mapping.go.

// --- Gamma API ---

// gammaMarketsResponse es la respuesta de GET /markets de Gamma.
type gammaMarketsResponse []gammaMarket

// gammaMarket es un mercado activo devuelto por Gamma.
type gammaMarket struct {
	ConditionID string       `json:"conditionId"`
	Question    string       `json:"question"`
	Tokens      []gammaToken `json:"tokens"`
	Active      bool         `json:"active"`
	Closed      bool         `json:"closed"`
}

// gammaToken representa un lado del mercado (Up/Down).
type gammaToken struct {
	TokenID string `json:"token_id"`
	Outcome string `json:"outcome"`
}

// --- CLOB API ---

// bookResponse es la respuesta de GET /book.
type bookResponse struct {
	AssetID string         `json:"asset_id"`
	Bids    []bookEntryRaw `json:"bids"`
	Asks    []bookEntryRaw `json:"asks"`
}

// bookEntryRaw es un nivel de precio raw de la API (strings para mayor precisión).
type bookEntryRaw struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// orderRequest es el body de POST /order.
type orderRequest struct {
	TokenID string  `json:"token_id"`
	Price   float64 `json:"price"`
	Size    float64 `json:"size"`
	Side    string  `json:"side"`
}

// orderResponse es la confirmación (o rechazo) del CLOB.
type orderResponse struct {
	ErrorMsg string `json:"errorMsg"`
	OrderID  string `json:"orderID"`
	Status   string `json:"status"`
	Success  bool   `json:"success"`
}
