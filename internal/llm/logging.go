package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/vidya/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  providerName(l.inner),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

// Stream delegates to the inner provider when it streams, recording one
// event covering the whole stream.
func (l *LoggingProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	sp, ok := l.inner.(StreamProvider)
	if !ok {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("provider %s does not support streaming", l.inner.ModelID())}
	}

	start := time.Now()
	inner, err := sp.Stream(ctx, req)
	if err != nil {
		l.appendStreamEvent(ctx, start, err)
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		var streamErr error
		for chunk := range inner {
			if chunk.Err != nil {
				streamErr = chunk.Err
			}
			out <- chunk
		}
		l.appendStreamEvent(ctx, start, streamErr)
	}()
	return out, nil
}

func (l *LoggingProvider) appendStreamEvent(ctx context.Context, start time.Time, err error) {
	data := store.LLMRequestEventData{
		Provider:  providerName(l.inner),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// providerName reports a short name for the concrete provider behind p.
func providerName(p Provider) string {
	switch p.(type) {
	case *AnthropicProvider:
		return "anthropic"
	case *OpenAIProvider:
		return "openai"
	case *GeminiProvider:
		return "gemini"
	case *MockProvider:
		return "mock"
	default:
		return p.ModelID()
	}
}
