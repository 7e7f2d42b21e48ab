// Package marketref supplies the static reference classifications the
// analysis engine consults: per-symbol beta, market capitalisation band and
// sector, plus mutual fund ratings. The table ships compiled into the binary
// and never changes at runtime, which keeps report generation reproducible.
package marketref

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
)

//go:embed refdata.json
var embeddedRefData []byte

// EquityRef describes one listed company.
type EquityRef struct {
	Sector  string  `json:"sector"`
	CapBand string  `json:"capBand"`
	Beta    float64 `json:"beta"`
}

type refData struct {
	Equities map[string]EquityRef `json:"equities"`
	Funds    map[string]int       `json:"funds"`
}

// Provider answers lookups from a fixed in-memory table. It implements
// analysis.MarketData and additionally resolves sector labels, which the
// brokerage omits from synced holdings.
type Provider struct {
	equities map[string]EquityRef
	funds    map[string]int
}

var _ analysis.MarketData = (*Provider)(nil)

// NewProvider loads the reference table compiled into the binary.
//
// Returns:
//   - *Provider: A provider backed by the embedded table
//   - error: If the embedded table fails to parse
func NewProvider() (*Provider, error) {
	return parseRefData(embeddedRefData)
}

// NewProviderFromFile loads a reference table from a JSON file, replacing the
// embedded table entirely. Deployments that maintain their own reference data
// point MARKET_REF_PATH at such a file.
//
// Parameters:
//   - path: Filesystem path to a JSON reference table
//
// Returns:
//   - *Provider: A provider backed by the file contents
//   - error: If the file cannot be read or parsed
func NewProviderFromFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market reference file: %w", err)
	}
	return parseRefData(data)
}

func parseRefData(data []byte) (*Provider, error) {
	var raw refData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse market reference data: %w", err)
	}

	p := &Provider{
		equities: make(map[string]EquityRef, len(raw.Equities)),
		funds:    make(map[string]int, len(raw.Funds)),
	}
	for symbol, ref := range raw.Equities {
		p.equities[foldSymbol(symbol)] = ref
	}
	for name, rating := range raw.Funds {
		p.funds[foldName(name)] = rating
	}
	return p, nil
}

// Beta returns the equity beta recorded for a symbol.
func (p *Provider) Beta(symbol string) (float64, bool) {
	ref, ok := p.equities[foldSymbol(symbol)]
	if !ok || ref.Beta <= 0 {
		return 0, false
	}
	return ref.Beta, true
}

// CapBand returns the market capitalisation band recorded for a symbol.
// Entries with an unrecognised band are treated as unknown rather than
// surfaced as bad data.
func (p *Provider) CapBand(symbol string) (analysis.MarketCapBand, bool) {
	ref, ok := p.equities[foldSymbol(symbol)]
	if !ok {
		return "", false
	}
	band := analysis.MarketCapBand(ref.CapBand)
	switch band {
	case analysis.CapLarge, analysis.CapMid, analysis.CapSmall:
		return band, true
	}
	return "", false
}

// FundRating returns the 1-5 rating recorded for a mutual fund name.
func (p *Provider) FundRating(name string) (int, bool) {
	rating, ok := p.funds[foldName(name)]
	if !ok || rating < 1 || rating > 5 {
		return 0, false
	}
	return rating, true
}

// Sector returns the sector label recorded for a symbol.
func (p *Provider) Sector(symbol string) (string, bool) {
	ref, ok := p.equities[foldSymbol(symbol)]
	if !ok || ref.Sector == "" {
		return "", false
	}
	return ref.Sector, true
}

// Symbols returns how many equities the table covers. Exposed for the version
// endpoint and sanity logging at startup.
func (p *Provider) Symbols() int {
	return len(p.equities)
}

func foldSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
