package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
)

// AnalysisService orchestrates checkup runs: it assembles the full portfolio
// snapshot from every stored record family, feeds it to the analysis engine,
// and keeps the bounded report history both in memory and in the database.
//
// The engine itself is pure; all I/O lives here.
type AnalysisService struct {
	engine         *analysis.Engine
	investmentRepo *repository.InvestmentRepository
	expenseRepo    *repository.ExpenseRepository
	goalRepo       *repository.GoalRepository
	profileRepo    *repository.ProfileRepository
	holdingRepo    *repository.HoldingRepository
	reportRepo     *repository.ReportRepository
	log            zerolog.Logger

	mu      sync.Mutex // guards history; ReportHistory is not concurrency-safe
	history *analysis.ReportHistory
}

// NewAnalysisService creates a new AnalysisService with the provided engine
// and repository dependencies. Call LoadHistory afterwards to warm the
// in-memory report history from the database.
func NewAnalysisService(
	engine *analysis.Engine,
	investmentRepo *repository.InvestmentRepository,
	expenseRepo *repository.ExpenseRepository,
	goalRepo *repository.GoalRepository,
	profileRepo *repository.ProfileRepository,
	holdingRepo *repository.HoldingRepository,
	reportRepo *repository.ReportRepository,
	log zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		engine:         engine,
		investmentRepo: investmentRepo,
		expenseRepo:    expenseRepo,
		goalRepo:       goalRepo,
		profileRepo:    profileRepo,
		holdingRepo:    holdingRepo,
		reportRepo:     reportRepo,
		log:            log.With().Str("component", "analysis").Logger(),
		history:        analysis.NewReportHistory(analysis.DefaultHistoryLimit),
	}
}

// LoadHistory warms the in-memory report history from stored rows. Reports
// that no longer decode (schema drift across versions) are skipped rather
// than failing startup.
func (s *AnalysisService) LoadHistory() error {
	records, err := s.reportRepo.RecentReports(s.history.Limit())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// RecentReports returns newest first; replay oldest first so the
	// history's eviction order matches generation order.
	for i := len(records) - 1; i >= 0; i-- {
		var report analysis.AnalysisReport
		if err := json.Unmarshal(records[i].Payload, &report); err != nil {
			s.log.Warn().Err(err).Str("id", records[i].ID).Msg("Skipping stored report that no longer decodes")
			continue
		}
		s.history.Add(&report)
	}

	if n := s.history.Len(); n > 0 {
		s.log.Info().Int("reports", n).Msg("Report history loaded")
	}
	return nil
}

// BuildSnapshot assembles the complete analysis input from every stored
// record family. The five loads are independent and run concurrently.
//
// A missing profile is normal (analysis substitutes defaults); everything
// else failing aborts the build.
func (s *AnalysisService) BuildSnapshot(ctx context.Context) (*analysis.PortfolioSnapshot, error) {
	var (
		investments []model.Investment
		expenses    []model.Expense
		goals       []model.Goal
		equities    []model.EquityHolding
		funds       []model.FundHolding
		profile     *model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		investments, err = s.investmentRepo.GetInvestments()
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.GetExpenses()
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.GetGoals()
		return err
	})
	g.Go(func() error {
		var err error
		equities, err = s.holdingRepo.GetEquityHoldings()
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		funds, err = s.holdingRepo.GetFundHoldings()
		return err
	})
	g.Go(func() error {
		p, err := s.profileRepo.GetProfile()
		if err != nil {
			if errors.Is(err, apperrors.ErrProfileNotFound) {
				return nil
			}
			return err
		}
		profile = &p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble portfolio snapshot: %w", err)
	}

	return buildSnapshot(investments, expenses, goals, equities, funds, profile), nil
}

// RunAnalysis builds a fresh snapshot, runs the engine over it and records
// the result. Persistence failures are logged but do not discard the report:
// the caller still gets the analysis it asked for.
func (s *AnalysisService) RunAnalysis(ctx context.Context) (*analysis.AnalysisReport, error) {
	snapshot, err := s.BuildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.engine.Analyze(snapshot, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to run analysis: %w", err)
	}

	if err := s.storeReport(report); err != nil {
		s.log.Error().Err(err).Msg("Failed to persist analysis report")
	}

	s.mu.Lock()
	s.history.Add(report)
	s.mu.Unlock()

	s.log.Info().
		Time("generatedAt", report.GeneratedAt).
		Int("insights", len(report.Insights)).
		Msg("Analysis report generated")

	return report, nil
}

// RecentReports returns the retained reports, newest first.
func (s *AnalysisService) RecentReports() []*analysis.AnalysisReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Reports()
}

func (s *AnalysisService) storeReport(report *analysis.AnalysisReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	record := model.ReportRecord{
		ID:          uuid.New().String(),
		GeneratedAt: report.GeneratedAt,
		Payload:     payload,
	}
	return s.reportRepo.InsertReport(record, s.history.Limit())
}

// buildSnapshot maps stored records onto the analysis input types. Free-text
// enum fields are parsed into canonical values exactly here, so the engine
// never sees raw storage strings.
func buildSnapshot(
	investments []model.Investment,
	expenses []model.Expense,
	goals []model.Goal,
	equities []model.EquityHolding,
	funds []model.FundHolding,
	profile *model.Profile,
) *analysis.PortfolioSnapshot {
	snapshot := &analysis.PortfolioSnapshot{
		EquityHoldings:    make([]analysis.EquityHolding, len(equities)),
		FundHoldings:      make([]analysis.FundHolding, len(funds)),
		ExternalAssets:    make([]analysis.ExternalAsset, len(investments)),
		RecurringExpenses: make([]analysis.RecurringExpense, len(expenses)),
		FutureExpenses:    make([]analysis.FutureExpense, len(goals)),
		TakenAt:           time.Now(),
	}

	for i, h := range equities {
		snapshot.EquityHoldings[i] = analysis.EquityHolding{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Quantity:     h.Quantity,
			AverageCost:  h.AverageCost,
			CurrentPrice: h.CurrentPrice,
			Sector:       h.Sector,
		}
	}
	for i, h := range funds {
		snapshot.FundHoldings[i] = analysis.FundHolding{
			Name:           h.Name,
			InvestedAmount: h.InvestedAmount,
			CurrentValue:   h.CurrentValue,
			Category:       h.Category,
		}
	}
	for i, inv := range investments {
		snapshot.ExternalAssets[i] = analysis.ExternalAsset{
			Name:   inv.Name,
			Type:   analysis.ParseAssetType(inv.Type),
			Amount: inv.Amount,
			Notes:  inv.Notes,
		}
	}
	for i, exp := range expenses {
		snapshot.RecurringExpenses[i] = analysis.RecurringExpense{
			Name:      exp.Name,
			Type:      analysis.ParseExpenseType(exp.Type),
			Amount:    exp.Amount,
			Frequency: analysis.ParseFrequency(exp.Frequency),
			Notes:     exp.Notes,
		}
	}
	for i, g := range goals {
		snapshot.FutureExpenses[i] = analysis.FutureExpense{
			Purpose:   analysis.ParseGoalPurpose(g.Purpose),
			Amount:    g.Amount,
			Timeframe: analysis.ParseTimeframe(g.Timeframe),
			Priority:  analysis.ParsePriority(g.Priority),
			Notes:     g.Notes,
		}
	}
	if profile != nil {
		snapshot.Profile = &analysis.UserProfile{
			Age:            profile.Age,
			City:           profile.City,
			RiskTolerance:  analysis.ParseRiskTolerance(profile.RiskTolerance),
			FinancialGoals: profile.FinancialGoals,
		}
	}

	return snapshot
}
