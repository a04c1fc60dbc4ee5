package http

import (
	"net/http"

	"go.uber.org/zap"

	"investment-calculator/service"
)

// NewRouter wires the investment endpoints behind the rate limiter and
// request logging.
func NewRouter(
	investmentService *service.InvestmentService,
	limiter *RateLimiter,
	logger *zap.Logger,
) http.Handler {
	investmentHandler := NewInvestmentHandler(investmentService, logger)
	historyHandler := NewHistoryHandler(investmentService, logger)

	mux := http.NewServeMux()
	mux.Handle(
		"/investment/calculate",
		RateLimitMiddleware(
			limiter,
			logger,
			http.HandlerFunc(investmentHandler.CalculateInvestment),
		),
	)

	mux.Handle(
		"/investment/table",
		RateLimitMiddleware(
			limiter,
			logger,
			http.HandlerFunc(investmentHandler.RenderTable),
		),
	)

	mux.Handle(
		"/investment/history",
		RateLimitMiddleware(
			limiter,
			logger,
			http.HandlerFunc(historyHandler.ListHistory),
		),
	)

	return LoggingMiddleware(logger, mux)
}
