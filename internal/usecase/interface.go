package usecase

import (
	"context"
	"time"

	"khmer-format/internal/domain"
)

// RequestRepository defines the interface for fetching batch conversion requests.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type RequestRepository interface {
	GetRequests(ctx context.Context, paths []string) ([]domain.ConversionRequest, error)
}

// Clock is the host wall clock together with its timezone database.
type Clock interface {
	Now() time.Time
	LoadLocation(name string) (*time.Location, error)
}
