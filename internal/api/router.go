package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/handlers"
	custommiddleware "github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/middleware"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/config"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	investmentService *service.InvestmentService,
	expenseService *service.ExpenseService,
	goalService *service.GoalService,
	profileService *service.ProfileService,
	brokerService *service.BrokerService,
	analysisService *service.AnalysisService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/investments", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(investmentService)
			r.Get("/", investmentHandler.AllInvestments)
			r.Post("/", investmentHandler.CreateInvestment)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(expenseService)
			r.Get("/", expenseHandler.AllExpenses)
			r.Post("/", expenseHandler.CreateExpense)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", expenseHandler.GetExpense)
				r.Put("/", expenseHandler.UpdateExpense)
				r.Delete("/", expenseHandler.DeleteExpense)
			})
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(goalService)
			r.Get("/", goalHandler.AllGoals)
			r.Post("/", goalHandler.CreateGoal)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", goalHandler.GetGoal)
				r.Put("/", goalHandler.UpdateGoal)
				r.Delete("/", goalHandler.DeleteGoal)
			})
		})

		r.Route("/profile", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(profileService)
			r.Get("/", profileHandler.GetProfile)
			r.Put("/", profileHandler.SaveProfile)
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingsHandler := handlers.NewHoldingsHandler(brokerService)
			r.Get("/", holdingsHandler.GetHoldings)
		})

		r.Route("/broker", func(r chi.Router) {
			brokerHandler := handlers.NewBrokerHandler(brokerService)
			r.Get("/status", brokerHandler.Status)

			// Session mutations require the internal API key
			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/session", brokerHandler.ExchangeToken)
				r.Delete("/session", brokerHandler.Disconnect)
				r.Post("/sync", brokerHandler.SyncHoldings)
			})
		})

		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(analysisService)
			r.Post("/", analysisHandler.RunAnalysis)
			r.Get("/history", analysisHandler.History)
		})
	})

	return r
}
