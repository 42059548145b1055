package usecase

import (
	"time"

	"coursepilot/internal/classifier"
	"coursepilot/internal/extraction/repository"
	"coursepilot/pkg/datemath"
	"coursepilot/pkg/llmprovider"
	pkgLog "coursepilot/pkg/log"
)

// Config carries the service-level pipeline defaults.
type Config struct {
	Timezone          string
	MaxChunkSize      int
	FallbackDueDays   int
	RecurrenceHorizon int
	ModelTimeout      time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	cls      *classifier.Classifier
	dateMath *datemath.Parser
	feed     repository.FeedRepository
	cfg      Config
}

// New creates a new extraction UseCase instance. llm may manage zero
// providers, in which case every run is heuristics only. feed may be nil
// when no calendar integration is configured.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	cls *classifier.Classifier,
	dateMath *datemath.Parser,
	feed repository.FeedRepository,
	cfg Config,
) *implUseCase {
	if cfg.MaxChunkSize <= 0 {
		cfg.MaxChunkSize = 50000
	}
	if cfg.FallbackDueDays <= 0 {
		cfg.FallbackDueDays = 14
	}
	if cfg.RecurrenceHorizon <= 0 {
		cfg.RecurrenceHorizon = 12
	}
	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = 30 * time.Second
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		cls:      cls,
		dateMath: dateMath,
		feed:     feed,
		cfg:      cfg,
	}
}
