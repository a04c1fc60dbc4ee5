package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"investment-calculator/domain"
	"investment-calculator/render"
	"investment-calculator/service"
)

type InvestmentHandler struct {
	service *service.InvestmentService
	logger  *zap.Logger
}

func NewInvestmentHandler(service *service.InvestmentService, logger *zap.Logger) *InvestmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvestmentHandler{service: service, logger: logger}
}

// CalculateInvestment accepts the raw form fields as JSON strings and
// responds with the results view. A duration below one year is answered with
// the invalid-input view, not an error status.
func (h *InvestmentHandler) CalculateInvestment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var form domain.InvestmentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.Debug("decoding request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.calculate(r, form)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, view)
}

// RenderTable reads the form fields from the query string and responds with
// the plain-text results table.
func (h *InvestmentHandler) RenderTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := h.calculate(r, service.FormFromValues(r.URL.Query()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.Write(w, view, render.FormatTable); err != nil {
		h.logger.Warn("writing table", zap.Error(err))
	}
}

func (h *InvestmentHandler) calculate(r *http.Request, form domain.InvestmentForm) (domain.ResultsView, error) {
	input, err := service.ParseInvestmentForm(form)
	if err != nil {
		return domain.ResultsView{}, err
	}

	snapshots, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		return domain.ResultsView{}, err
	}

	return render.BuildResults(snapshots), nil
}
