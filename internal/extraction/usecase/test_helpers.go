package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursepilot/internal/classifier"
	"coursepilot/internal/model"
	"coursepilot/pkg/datemath"
	"coursepilot/pkg/llmprovider"
)

// mockLogger is a no-op Logger for tests
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// stubProvider is a canned-response LLM provider for pipeline tests.
type stubProvider struct {
	text       string
	shouldFail bool
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if s.shouldFail {
		return nil, errors.New("stub provider error")
	}
	return &llmprovider.Response{
		Text:         s.text,
		ProviderName: s.Name(),
		ModelName:    s.Model(),
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

// stubFeed is a canned calendar-feed repository.
type stubFeed struct {
	text string
	err  error
}

func (s *stubFeed) FetchFeed(ctx context.Context, from, to time.Time) (model.RawSource, error) {
	if s.err != nil {
		return model.RawSource{}, s.err
	}
	return model.RawSource{Kind: model.SourceCalendarFeed, Text: s.text}, nil
}

// newTestUseCase wires a usecase against the given providers (nil for
// heuristics only).
func newTestUseCase(t *testing.T, providers []llmprovider.Provider) *implUseCase {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	logger := &mockLogger{}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, logger)

	return New(logger, manager, classifier.New(parser), parser, nil, Config{Timezone: "UTC"})
}
