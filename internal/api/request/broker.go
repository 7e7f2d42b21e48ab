package request

// ExchangeTokenRequest is the request body for completing the brokerage login
// flow. The request token arrives via the login redirect and is exchanged for
// an access token server-side.
type ExchangeTokenRequest struct {
	RequestToken string `json:"requestToken"`
}
