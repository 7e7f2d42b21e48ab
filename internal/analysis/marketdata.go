package analysis

import "strings"

// DefaultBeta is assumed for any symbol without reference data, so unknown
// holdings neither dampen nor amplify the portfolio beta.
const DefaultBeta = 1.0

// lowRatedThreshold marks fund ratings at or below this value (on a 1-5
// scale) as low-rated.
const lowRatedThreshold = 2

// MarketCapBand classifies a listed company by market capitalisation.
type MarketCapBand string

const (
	CapLarge MarketCapBand = "large"
	CapMid   MarketCapBand = "mid"
	CapSmall MarketCapBand = "small"
)

// MarketData supplies the reference classifications the engine cannot derive
// from a snapshot alone. Implementations must be deterministic: the same
// lookup always returns the same answer for the lifetime of an engine, or
// report runs stop being reproducible.
//
// Every method returns ok=false when no data is known; the engine then falls
// back to neutral defaults (beta 1.0, zero exposure contributions).
type MarketData interface {
	// Beta returns the equity beta for a symbol.
	Beta(symbol string) (float64, bool)

	// CapBand returns the market capitalisation band for a symbol.
	CapBand(symbol string) (MarketCapBand, bool)

	// FundRating returns a 1-5 rating for a mutual fund by name.
	FundRating(name string) (int, bool)
}

// StaticMarketData is a MarketData backed by fixed lookup tables. Symbol keys
// are matched case-insensitively (stored uppercase), fund names
// case-insensitively as given. The zero value is a valid provider that knows
// nothing.
type StaticMarketData struct {
	Betas       map[string]float64
	CapBands    map[string]MarketCapBand
	FundRatings map[string]int
}

// NewStaticMarketData builds a provider from raw tables, folding symbol keys
// to uppercase and fund names to lowercase so callers do not need to
// pre-normalise their data.
func NewStaticMarketData(betas map[string]float64, bands map[string]MarketCapBand, ratings map[string]int) StaticMarketData {
	s := StaticMarketData{
		Betas:       make(map[string]float64, len(betas)),
		CapBands:    make(map[string]MarketCapBand, len(bands)),
		FundRatings: make(map[string]int, len(ratings)),
	}
	for symbol, beta := range betas {
		s.Betas[strings.ToUpper(symbol)] = beta
	}
	for symbol, band := range bands {
		s.CapBands[strings.ToUpper(symbol)] = band
	}
	for name, rating := range ratings {
		s.FundRatings[foldFundName(name)] = rating
	}
	return s
}

// NeutralMarketData returns a provider with no classifications. Every lookup
// misses, leaving all engine fallbacks in effect.
func NeutralMarketData() MarketData {
	return StaticMarketData{}
}

// Beta implements MarketData.
func (s StaticMarketData) Beta(symbol string) (float64, bool) {
	beta, ok := s.Betas[strings.ToUpper(symbol)]
	return beta, ok
}

// CapBand implements MarketData.
func (s StaticMarketData) CapBand(symbol string) (MarketCapBand, bool) {
	band, ok := s.CapBands[strings.ToUpper(symbol)]
	return band, ok
}

// FundRating implements MarketData.
func (s StaticMarketData) FundRating(name string) (int, bool) {
	rating, ok := s.FundRatings[foldFundName(name)]
	return rating, ok
}

// foldFundName canonicalises a fund name for case-insensitive matching.
func foldFundName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
