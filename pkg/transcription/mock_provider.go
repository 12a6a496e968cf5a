package transcription

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var defaultMockLines = []string{
	"Let's get started, thanks everyone for joining.",
	"I wanted to walk through the current status of the project.",
	"There's one blocker on the authentication flow we need to resolve.",
	"Let's circle back on that by end of week.",
	"Does anyone have questions before we wrap up?",
}

// mockCounterTTL is well past any plausible live session length; a
// counter that outlives its session is harmless, it just never gets read
// again before the cache purges it.
const mockCounterTTL = 6 * time.Hour

// MockProvider cycles through a canned list of lines, one per chunk, with
// a counter local to each live session that resets when the session
// starts. It exists as a first-class test harness affordance (MOCK_MODE),
// not a debug shortcut. Counters live in an in-memory TTL cache rather
// than a plain map so a session that's abandoned mid-call (client drops
// without calling /stop) doesn't leak its counter forever.
type MockProvider struct {
	lines    []string
	counters *cache.Cache
}

var _ Provider = &MockProvider{}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		lines:    defaultMockLines,
		counters: cache.New(mockCounterTTL, mockCounterTTL/6),
	}
}

// ResetSession zeroes the cycling counter for a session, called when a
// live session starts.
func (p *MockProvider) ResetSession(sessionId uuid.UUID) {
	p.counters.Set(sessionId.String(), 0, cache.DefaultExpiration)
}

// TranscribeForSession is used by the live ingestion pipeline, which knows
// which session a chunk belongs to. Transcribe (to satisfy Provider) falls
// back to a single shared unkeyed counter.
func (p *MockProvider) TranscribeForSession(ctx context.Context, sessionId uuid.UUID, audio []byte, formatHint string) (string, error) {
	key := sessionId.String()
	idx := 0
	if v, found := p.counters.Get(key); found {
		idx = v.(int)
	}
	line := p.lines[idx%len(p.lines)]
	p.counters.Set(key, idx+1, cache.DefaultExpiration)
	return line, nil
}

func (p *MockProvider) Transcribe(ctx context.Context, audio []byte, formatHint string) (string, error) {
	return p.TranscribeForSession(ctx, uuid.Nil, audio, formatHint)
}
