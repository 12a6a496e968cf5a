package extraction

import "context"

// MockProvider returns a deterministic, schema-matching extraction record
// regardless of transcript content. Part of the MOCK_MODE test harness
// affordance, not a debug shortcut.
type MockProvider struct{}

var _ Provider = &MockProvider{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Extract(ctx context.Context, promptPrefix, transcript string) (string, error) {
	return `{
  "action_items": [{"task": "Follow up on open items", "owner": "Speaker", "deadline": "next week"}],
  "follow_up_email": "Thanks for joining, here is a summary of what we covered.",
  "summary": "Mock summary generated in MOCK_MODE.",
  "open_questions": [],
  "proposed_solutions": []
}`, nil
}
