package kite

// envelope is the standard Kite Connect response wrapper.
type envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}

// Session is the result of exchanging a request token for an access token.
type Session struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	PublicToken string `json:"public_token"`
}

type sessionResponse struct {
	envelope
	Data Session `json:"data"`
}

// Holding is a single equity position as reported by the brokerage.
type Holding struct {
	TradingSymbol string  `json:"tradingsymbol"`
	Exchange      string  `json:"exchange"`
	ISIN          string  `json:"isin"`
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	LastPrice     float64 `json:"last_price"`
	PnL           float64 `json:"pnl"`
}

type holdingsResponse struct {
	envelope
	Data []Holding `json:"data"`
}

// MFHolding is a single mutual fund position as reported by the brokerage.
type MFHolding struct {
	Folio         string  `json:"folio"`
	Fund          string  `json:"fund"`
	TradingSymbol string  `json:"tradingsymbol"`
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	LastPrice     float64 `json:"last_price"`
	PnL           float64 `json:"pnl"`
}

type mfHoldingsResponse struct {
	envelope
	Data []MFHolding `json:"data"`
}

// InvestedAmount returns the cost basis of the fund position.
func (h MFHolding) InvestedAmount() float64 { return h.Quantity * h.AveragePrice }

// CurrentValue returns the market value of the fund position.
func (h MFHolding) CurrentValue() float64 { return h.Quantity * h.LastPrice }
