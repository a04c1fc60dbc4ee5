package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"investment-calculator/domain"
	"investment-calculator/repository"
)

// CalculateInvestmentResults simulates the investment year by year. Interest
// compounds on the previous end-of-year value and the annual contribution is
// added at the end of each year. A duration below one year yields an empty,
// non-nil slice; callers decide how to present that.
func CalculateInvestmentResults(input domain.InvestmentInput) []domain.YearlySnapshot {
	if input.Duration < 1 {
		return []domain.YearlySnapshot{}
	}

	annualData := make([]domain.YearlySnapshot, 0, input.Duration)
	investmentValue := input.InitialInvestment

	for year := 1; year <= input.Duration; year++ {
		interestEarnedInYear := investmentValue * (input.ExpectedReturn / 100)
		investmentValue += interestEarnedInYear + input.AnnualInvestment

		annualData = append(annualData, domain.YearlySnapshot{
			Year:             year,
			ValueEndOfYear:   investmentValue,
			Interest:         interestEarnedInYear,
			AnnualInvestment: input.AnnualInvestment,
		})
	}

	return annualData
}

type InvestmentService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewInvestmentService creates an InvestmentService backed by the given
// history repository and result cache.
func NewInvestmentService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *InvestmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvestmentService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Calculate validates the input and returns the yearly snapshots. Results are
// served from the cache when possible; every call gets its own slice.
func (s *InvestmentService) Calculate(
	ctx context.Context,
	input domain.InvestmentInput,
) ([]domain.YearlySnapshot, error) {

	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Duration < 1 {
		s.logger.Debug("empty projection requested", zap.Int("duration", input.Duration))
		return []domain.YearlySnapshot{}, nil
	}

	key := cacheKey(input)
	if cached, ok := s.loadCached(ctx, key); ok {
		return cached, nil
	}

	snapshots := CalculateInvestmentResults(input)

	// Caching and history are not critical for the caller.
	if err := s.storeCached(ctx, key, snapshots); err != nil {
		s.logger.Warn("failed to cache investment results", zap.String("key", key), zap.Error(err))
	}
	if err := s.save(ctx, input, snapshots); err != nil {
		s.logger.Warn("failed to save investment calculation", zap.Error(err))
	}

	return snapshots, nil
}

// History returns the most recent calculations, newest first.
func (s *InvestmentService) History(
	ctx context.Context,
	limit int,
) ([]domain.CalculationRecord, error) {
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0:
		return nil, fmt.Errorf("%w: history limit must be positive", ErrInvalidInput)
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return records, nil
}

func validateInput(input domain.InvestmentInput) error {
	for name, v := range map[string]float64{
		FieldInitialInvestment: input.InitialInvestment,
		FieldAnnualInvestment:  input.AnnualInvestment,
		FieldExpectedReturn:    input.ExpectedReturn,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
		}
	}

	if input.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial investment cannot be negative", ErrInvalidInput)
	}
	if input.InitialInvestment > MaxInvestmentAmount {
		return fmt.Errorf("%w: initial investment exceeds the maximum of $%.2f", ErrInvalidInput, MaxInvestmentAmount)
	}
	if input.AnnualInvestment < 0 {
		return fmt.Errorf("%w: annual investment cannot be negative", ErrInvalidInput)
	}
	if input.AnnualInvestment > MaxInvestmentAmount {
		return fmt.Errorf("%w: annual investment exceeds the maximum of $%.2f", ErrInvalidInput, MaxInvestmentAmount)
	}
	if input.ExpectedReturn < MinExpectedReturn || input.ExpectedReturn > MaxExpectedReturn {
		return fmt.Errorf("%w: expected return must be between %.0f%% and %.0f%%", ErrInvalidInput, MinExpectedReturn, MaxExpectedReturn)
	}
	if input.Duration > MaxDurationYears {
		return fmt.Errorf("%w: duration exceeds the maximum of %d years", ErrInvalidInput, MaxDurationYears)
	}
	return nil
}

func cacheKey(input domain.InvestmentInput) string {
	h := xxhash.New()
	for _, v := range []float64{input.InitialInvestment, input.AnnualInvestment, input.ExpectedReturn} {
		_, _ = h.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		_, _ = h.WriteString("|")
	}
	_, _ = h.WriteString(strconv.Itoa(input.Duration))
	return cacheKeyPrefix + strconv.FormatUint(h.Sum64(), 16)
}

func (s *InvestmentService) loadCached(ctx context.Context, key string) ([]domain.YearlySnapshot, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var snapshots []domain.YearlySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshots); err != nil {
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if len(snapshots) == 0 {
		return nil, false
	}

	s.logger.Debug("investment cache hit", zap.String("key", key))
	return snapshots, true
}

func (s *InvestmentService) storeCached(ctx context.Context, key string, snapshots []domain.YearlySnapshot) error {
	data, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("encode snapshots: %w", err)
	}
	return s.cache.Set(ctx, key, string(data))
}

func (s *InvestmentService) save(
	ctx context.Context,
	input domain.InvestmentInput,
	snapshots []domain.YearlySnapshot,
) error {
	last := snapshots[len(snapshots)-1]
	invested := input.InitialInvestment + input.AnnualInvestment*float64(last.Year)

	return s.repo.Save(ctx, domain.CalculationRecord{
		ID:            uuid.NewString(),
		Input:         input,
		Years:         len(snapshots),
		FinalValue:    roundTo2Decimals(last.ValueEndOfYear),
		TotalInterest: roundTo2Decimals(last.ValueEndOfYear - invested),
		CreatedAt:     s.now().UTC(),
	})
}

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
