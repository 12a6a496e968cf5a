package extraction

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMockProviderReturnsDecodableSchema(t *testing.T) {
	p := NewMockProvider()
	raw, err := p.Extract(context.Background(), "prefix", "transcript")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("mock output is not valid JSON: %v", err)
	}

	for _, key := range []string{"action_items", "follow_up_email", "summary", "open_questions", "proposed_solutions"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("mock output missing key %q", key)
		}
	}
}
