// Package health abstracts the on-device health data source.
//
// The sync services talk to [Provider] only; the concrete source can be a
// platform SDK bridge or, for development and testing, [NewFileProvider]
// which reads samples from a JSON export file.
package health

import (
	"context"
	"time"

	"github.com/twinlab/healthsync/models"
)

//go:generate mockgen -source=provider.go -destination=../mock/health_provider_mock.go -package=mock

// Provider reads health samples from the device.
type Provider interface {
	// RequestAuthorization asks the platform for read access to the given
	// sample types. Returns true when access was granted.
	RequestAuthorization(ctx context.Context, types []string) (bool, error)

	// HasPermissions reports whether read access to all of the given types
	// is currently granted. A nil result means the platform cannot answer
	// without prompting the user, which callers treat as "ask again".
	HasPermissions(ctx context.Context, types []string) (*bool, error)

	// QueryData returns all samples of the given types whose start time
	// falls inside [from, to). The result order is unspecified.
	QueryData(ctx context.Context, types []string, from, to time.Time) ([]models.HealthSample, error)
}
