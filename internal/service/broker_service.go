package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/kite"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/marketref"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
)

// BrokerService handles the brokerage connection lifecycle: exchanging the
// login request token, keeping the local holdings mirror in sync, and
// reporting connection status. Access tokens are fernet-encrypted before they
// reach the database; the plaintext token exists only inside a sync call.
type BrokerService struct {
	sessionRepo *repository.SessionRepository
	holdingRepo *repository.HoldingRepository
	kiteClient  kite.Client
	marketRef   *marketref.Provider
	fernetKeys  []*fernet.Key
	log         zerolog.Logger
}

// NewBrokerService creates a new BrokerService. kiteClient and fernetKeys may
// be nil when the deployment has no brokerage credentials configured; every
// operation then fails with apperrors.ErrBrokerNotConfigured instead of
// panicking at startup.
func NewBrokerService(
	sessionRepo *repository.SessionRepository,
	holdingRepo *repository.HoldingRepository,
	kiteClient kite.Client,
	marketRef *marketref.Provider,
	fernetKeys []*fernet.Key,
	log zerolog.Logger,
) *BrokerService {
	return &BrokerService{
		sessionRepo: sessionRepo,
		holdingRepo: holdingRepo,
		kiteClient:  kiteClient,
		marketRef:   marketRef,
		fernetKeys:  fernetKeys,
		log:         log.With().Str("component", "broker").Logger(),
	}
}

func (s *BrokerService) configured() bool {
	return s.kiteClient != nil && len(s.fernetKeys) > 0
}

// ExchangeToken completes the brokerage login flow: the request token from
// the login redirect is exchanged for an access token, which is sealed and
// stored as the single broker session. Any previous session is replaced.
func (s *BrokerService) ExchangeToken(ctx context.Context, requestToken string) (*model.BrokerStatus, error) {
	if !s.configured() {
		return nil, apperrors.ErrBrokerNotConfigured
	}

	session, err := s.kiteClient.GenerateSession(ctx, requestToken)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange request token: %w", err)
	}

	sealed, err := fernet.EncryptAndSign([]byte(session.AccessToken), s.fernetKeys[0])
	if err != nil {
		return nil, fmt.Errorf("failed to seal access token: %w", err)
	}

	stored := model.BrokerSession{
		ID:             uuid.New().String(),
		UserID:         session.UserID,
		UserName:       session.UserName,
		EncryptedToken: string(sealed),
		ConnectedAt:    time.Now(),
	}

	if err := s.sessionRepo.SaveSession(stored); err != nil {
		return nil, fmt.Errorf("failed to store broker session: %w", err)
	}

	s.log.Info().Str("userId", session.UserID).Msg("Brokerage connected")

	return &model.BrokerStatus{
		Connected:   true,
		UserID:      stored.UserID,
		UserName:    stored.UserName,
		ConnectedAt: &stored.ConnectedAt,
	}, nil
}

// SyncHoldings refreshes the local holdings mirror from the brokerage.
// Equity and mutual fund holdings are fetched concurrently, enriched with
// sector labels from the market reference table, and swapped in wholesale.
func (s *BrokerService) SyncHoldings(ctx context.Context) (*model.HoldingsOverview, error) {
	if !s.configured() {
		return nil, apperrors.ErrBrokerNotConfigured
	}

	session, err := s.sessionRepo.GetSession()
	if err != nil {
		return nil, err
	}

	token, err := s.openToken(session.EncryptedToken)
	if err != nil {
		return nil, err
	}

	var equities []kite.Holding
	var funds []kite.MFHolding

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		equities, err = s.kiteClient.Holdings(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		funds, err = s.kiteClient.MFHoldings(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch holdings from brokerage: %w", err)
	}

	syncedAt := time.Now()
	equityModels := s.mapEquityHoldings(equities, syncedAt)
	fundModels := s.mapFundHoldings(funds, syncedAt)

	if err := s.holdingRepo.ReplaceHoldings(equityModels, fundModels); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.TouchLastSynced(session.ID, syncedAt); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("equities", len(equityModels)).
		Int("funds", len(fundModels)).
		Msg("Holdings synced")

	return &model.HoldingsOverview{
		Equities: equityModels,
		Funds:    fundModels,
		SyncedAt: &syncedAt,
	}, nil
}

// GetHoldings returns the current holdings mirror without contacting the
// brokerage.
func (s *BrokerService) GetHoldings() (*model.HoldingsOverview, error) {
	equities, err := s.holdingRepo.GetEquityHoldings()
	if err != nil {
		return nil, err
	}
	funds, err := s.holdingRepo.GetFundHoldings()
	if err != nil {
		return nil, err
	}

	overview := &model.HoldingsOverview{
		Equities: equities,
		Funds:    funds,
	}
	if session, err := s.sessionRepo.GetSession(); err == nil {
		overview.SyncedAt = session.LastSyncedAt
	}

	return overview, nil
}

// Status reports the connection state. A missing session is a normal
// disconnected state, not an error.
func (s *BrokerService) Status() (model.BrokerStatus, error) {
	session, err := s.sessionRepo.GetSession()
	if err != nil {
		if errors.Is(err, apperrors.ErrBrokerSessionNotFound) {
			return model.BrokerStatus{Connected: false}, nil
		}
		return model.BrokerStatus{}, err
	}

	return model.BrokerStatus{
		Connected:    true,
		UserID:       session.UserID,
		UserName:     session.UserName,
		ConnectedAt:  &session.ConnectedAt,
		LastSyncedAt: session.LastSyncedAt,
	}, nil
}

// Disconnect invalidates the session at the brokerage on a best-effort basis
// and removes it locally. The holdings mirror is kept so analysis keeps
// working on last-known data until the next connect.
func (s *BrokerService) Disconnect(ctx context.Context) error {
	session, err := s.sessionRepo.GetSession()
	if err != nil {
		return err
	}

	if s.configured() {
		if token, err := s.openToken(session.EncryptedToken); err == nil {
			if err := s.kiteClient.InvalidateSession(ctx, token); err != nil {
				s.log.Warn().Err(err).Msg("Failed to invalidate brokerage session, deleting local session anyway")
			}
		}
	}

	if err := s.sessionRepo.DeleteSession(); err != nil {
		return err
	}

	s.log.Info().Msg("Brokerage disconnected")
	return nil
}

// openToken unseals a stored access token. A token sealed under a rotated-out
// key fails verification, which callers surface as a session that needs to be
// re-established.
func (s *BrokerService) openToken(sealed string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(sealed), 0, s.fernetKeys)
	if msg == nil {
		return "", apperrors.ErrFailedToOpenToken
	}
	return string(msg), nil
}

func (s *BrokerService) mapEquityHoldings(holdings []kite.Holding, syncedAt time.Time) []model.EquityHolding {
	out := make([]model.EquityHolding, len(holdings))
	for i, h := range holdings {
		var sector string
		if s.marketRef != nil {
			sector, _ = s.marketRef.Sector(h.TradingSymbol)
		}
		out[i] = model.EquityHolding{
			ID:           uuid.New().String(),
			Symbol:       h.TradingSymbol,
			Name:         h.TradingSymbol,
			Exchange:     h.Exchange,
			ISIN:         h.ISIN,
			Quantity:     h.Quantity,
			AverageCost:  h.AveragePrice,
			CurrentPrice: h.LastPrice,
			Sector:       sector,
			SyncedAt:     syncedAt,
		}
	}
	return out
}

func (s *BrokerService) mapFundHoldings(holdings []kite.MFHolding, syncedAt time.Time) []model.FundHolding {
	out := make([]model.FundHolding, len(holdings))
	for i, h := range holdings {
		out[i] = model.FundHolding{
			ID:             uuid.New().String(),
			Name:           h.Fund,
			Folio:          h.Folio,
			Units:          h.Quantity,
			AverageNAV:     h.AveragePrice,
			InvestedAmount: h.InvestedAmount(),
			CurrentValue:   h.CurrentValue(),
			Category:       fundCategory(h.Fund),
			SyncedAt:       syncedAt,
		}
	}
	return out
}

// fundCategory derives a coarse category from a fund's name. The brokerage
// holdings feed carries no category field, and the label only needs to be
// precise enough for grouping and ELSS detection.
func fundCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "elss") || strings.Contains(lower, "tax saver") || strings.Contains(lower, "tax relief"):
		return "ELSS"
	case strings.Contains(lower, "index") || strings.Contains(lower, "nifty") || strings.Contains(lower, "sensex"):
		return "Index"
	case strings.Contains(lower, "small cap") || strings.Contains(lower, "smallcap"):
		return "Small Cap"
	case strings.Contains(lower, "mid cap") || strings.Contains(lower, "midcap"):
		return "Mid Cap"
	case strings.Contains(lower, "large cap") || strings.Contains(lower, "largecap") || strings.Contains(lower, "bluechip"):
		return "Large Cap"
	case strings.Contains(lower, "flexi cap") || strings.Contains(lower, "flexicap") || strings.Contains(lower, "multi cap"):
		return "Flexi Cap"
	case strings.Contains(lower, "liquid") || strings.Contains(lower, "overnight"):
		return "Liquid"
	case strings.Contains(lower, "gilt") || strings.Contains(lower, "debt") || strings.Contains(lower, "bond"):
		return "Debt"
	case strings.Contains(lower, "hybrid") || strings.Contains(lower, "balanced"):
		return "Hybrid"
	default:
		return "Equity"
	}
}
