package extraction

import (
	"context"
	"fmt"

	"github.com/meetingscribe/api/pkg/llm"
)

// LLMExtractorProvider is a single-message, fixed-token-budget wrapper
// around an llm.LLMProvider. D (tolerant decoding) is always applied by
// the caller regardless of which provider produced the raw text.
type LLMExtractorProvider struct {
	llmProvider llm.LLMProvider
	maxTokens   int
}

var _ Provider = &LLMExtractorProvider{}

func NewLLMExtractorProvider(llmProvider llm.LLMProvider) *LLMExtractorProvider {
	return &LLMExtractorProvider{
		llmProvider: llmProvider,
		maxTokens:   1500,
	}
}

func (p *LLMExtractorProvider) Extract(ctx context.Context, promptPrefix, transcript string) (string, error) {
	prompt := promptPrefix + transcript
	text, err := p.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.2), func(o *llm.Options) { o.MaxTokens = p.maxTokens })
	if err != nil {
		return "", &ProviderError{Err: fmt.Errorf("extraction provider call failed: %w", err)}
	}
	return text, nil
}
