package extraction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract turns raw academic text into structured candidate tasks.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
