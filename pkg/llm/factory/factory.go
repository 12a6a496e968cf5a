package factory

import (
	"fmt"

	"github.com/meetingscribe/api/pkg/llm"
	"github.com/meetingscribe/api/pkg/llm/huggingface"
	"github.com/meetingscribe/api/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, huggingFaceAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(huggingFaceAPIKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
