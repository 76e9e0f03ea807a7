package usecase

import (
	"context"
	"fmt"

	"khmer-format/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchConversionUseCase orchestrates the conversion of many requests at once.
type BatchConversionUseCase struct {
	repo   RequestRepository
	money  *MoneyFormatter
	times  *TimeFormatter
	logger *zap.Logger
}

// NewBatchConversionUseCase creates a new instance of the usecase.
func NewBatchConversionUseCase(repo RequestRepository, money *MoneyFormatter, times *TimeFormatter, logger *zap.Logger) *BatchConversionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchConversionUseCase{
		repo:   repo,
		money:  money,
		times:  times,
		logger: logger,
	}
}

// Convert reads every request from paths and converts each one. A request
// that fails validation is recorded in the report and does not stop the batch.
func (uc *BatchConversionUseCase) Convert(ctx context.Context, paths []string) (*domain.BatchReport, error) {
	// Step 1: Data Ingestion
	requests, err := uc.repo.GetRequests(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("could not get conversion requests: %w", err)
	}

	report := domain.BatchReport{
		Summary: domain.BatchSummary{
			RunID:           uuid.NewString(),
			TotalRequests:   len(requests),
			RequestsPerKind: make(map[domain.RequestKind]int),
			ErrorsPerKind:   make(map[string]int),
		},
		Results: make([]domain.ConversionResult, 0, len(requests)),
	}

	// Step 2: Row-by-row conversion
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch %s interrupted: %w", report.Summary.RunID, err)
		}

		result := domain.ConversionResult{Request: req}
		text, err := uc.convert(req)
		if err != nil {
			result.ErrorKind = domain.ErrorKind(err)
			result.ErrorMessage = err.Error()
			uc.logger.Debug("request failed",
				zap.String("id", req.ID),
				zap.String("source", req.Source),
				zap.String("error_kind", result.ErrorKind),
				zap.Error(err),
			)
		} else {
			result.Text = text
		}

		uc.processResult(&report, result)
	}

	uc.logger.Info("batch converted",
		zap.String("run_id", report.Summary.RunID),
		zap.Int("total", report.Summary.TotalRequests),
		zap.Int("succeeded", report.Summary.Succeeded),
		zap.Int("failed", report.Summary.Failed),
	)

	return &report, nil
}

func (uc *BatchConversionUseCase) convert(req domain.ConversionRequest) (string, error) {
	switch req.Kind {
	case domain.KindMoney:
		return uc.money.Format(req.Currency, req.Value, req.KhmerDigits)
	case domain.KindWords:
		return uc.money.Spell(req.Currency, req.Value)
	case domain.KindTime:
		mode := req.Mode
		if mode == "" {
			mode = string(domain.ModeDigits)
		}
		return uc.times.Format(req.Value, mode)
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, req.Kind)
	}
}

// processResult appends a result and updates the summary counters.
func (uc *BatchConversionUseCase) processResult(report *domain.BatchReport, result domain.ConversionResult) {
	report.Summary.RequestsPerKind[result.Request.Kind]++
	if result.Failed() {
		report.Summary.Failed++
		report.Summary.ErrorsPerKind[result.ErrorKind]++
	} else {
		report.Summary.Succeeded++
	}
	report.Results = append(report.Results, result)
}
