package transcription

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestMockProviderCyclesLinesPerSession(t *testing.T) {
	p := NewMockProvider()
	session := uuid.New()
	p.ResetSession(session)

	var lines []string
	for i := 0; i < len(defaultMockLines)+1; i++ {
		line, err := p.TranscribeForSession(context.Background(), session, nil, "")
		if err != nil {
			t.Fatalf("TranscribeForSession returned error: %v", err)
		}
		lines = append(lines, line)
	}

	if lines[0] != defaultMockLines[0] {
		t.Errorf("first line after reset = %q, want %q", lines[0], defaultMockLines[0])
	}
	if lines[len(defaultMockLines)] != defaultMockLines[0] {
		t.Errorf("counter should wrap back to the first line, got %q", lines[len(defaultMockLines)])
	}
}

func TestMockProviderSessionsAreIndependent(t *testing.T) {
	p := NewMockProvider()
	a, b := uuid.New(), uuid.New()
	p.ResetSession(a)
	p.ResetSession(b)

	if _, err := p.TranscribeForSession(context.Background(), a, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.TranscribeForSession(context.Background(), a, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lineB, err := p.TranscribeForSession(context.Background(), b, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lineB != defaultMockLines[0] {
		t.Errorf("session b counter should be independent of session a, got %q", lineB)
	}
}

func TestMockProviderResetRestartsCounter(t *testing.T) {
	p := NewMockProvider()
	session := uuid.New()
	p.ResetSession(session)
	if _, err := p.TranscribeForSession(context.Background(), session, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.ResetSession(session)
	line, err := p.TranscribeForSession(context.Background(), session, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != defaultMockLines[0] {
		t.Errorf("after ResetSession, counter should restart at the first line, got %q", line)
	}
}
