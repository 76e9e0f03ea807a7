package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"khmer-format/internal/domain"
	"khmer-format/internal/numeral"
)

// requestColumns is the expected header of a request file.
var requestColumns = []string{"id", "kind", "currency", "value", "mode", "khmer_digits"}

// CSVRequestRepository implements the RequestRepository interface for CSV files.
type CSVRequestRepository struct{}

// NewCSVRequestRepository creates a new repository instance.
func NewCSVRequestRepository() *CSVRequestRepository {
	return &CSVRequestRepository{}
}

// GetRequests reads and parses conversion requests from one or more CSV files.
func (r *CSVRequestRepository) GetRequests(ctx context.Context, paths []string) ([]domain.ConversionRequest, error) {
	var allRequests []domain.ConversionRequest

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		requests, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		allRequests = append(allRequests, requests...)
	}
	return allRequests, nil
}

func (r *CSVRequestRepository) readFile(path string) ([]domain.ConversionRequest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open request file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(requestColumns)
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	requests := make([]domain.ConversionRequest, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		req := domain.ConversionRequest{
			ID:       record[0],
			Kind:     domain.RequestKind(strings.ToLower(strings.TrimSpace(record[1]))),
			Currency: strings.TrimSpace(record[2]),
			// Amounts and times may be written with Khmer numeral glyphs.
			Value:  numeral.ToArabicDigits(record[3]),
			Mode:   strings.TrimSpace(record[4]),
			Source: filepath.Base(path),
		}

		if flag := strings.TrimSpace(record[5]); flag != "" {
			khmerDigits, err := strconv.ParseBool(flag)
			if err != nil {
				return nil, fmt.Errorf("could not parse khmer_digits '%s' in %s: %w", record[5], path, err)
			}
			req.KhmerDigits = &khmerDigits
		}

		requests = append(requests, req)
	}
	return requests, nil
}
