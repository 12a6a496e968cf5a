// Package extraction turns a meeting transcript into a raw extraction
// record string by prompting an LLM. The result is never strict-parsed
// here — callers always route it through pkg/tolerant.
package extraction

import "context"

// ProviderError wraps an extraction failure, retaining the upstream
// status/body for UpstreamError logging without leaking it to the client.
type ProviderError struct {
	Status int
	Body   string
	Err    error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Provider extracts structured content from a transcript. promptPrefix is
// always PromptPrefix from this package; it is a parameter only so tests
// can exercise the decoder against arbitrary prefixes.
type Provider interface {
	Extract(ctx context.Context, promptPrefix, transcript string) (string, error)
}

// PromptPrefix pins the schema and defaults the extractor must follow. It
// is prepended to every transcript regardless of provider.
const PromptPrefix = `You are analyzing a meeting transcript. Extract the following as a single JSON object, with no markdown code fences and no commentary before or after it:

{
  "action_items": [{"task": "string", "owner": "string", "deadline": "string"}],
  "follow_up_email": "string",
  "summary": "string",
  "open_questions": ["string"],
  "proposed_solutions": ["string"]
}

If a field has no content, use an empty array or empty string for it rather than omitting it. Respond with the JSON object only.

Transcript:
`
