package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// LLMSource asks an OpenAI-compatible chat-completions endpoint to emit a
// strict macro JSON object and parses the first object found in the reply.
type LLMSource struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewLLMSource(baseURL string, apiKey string, model string, httpClient *http.Client) *LLMSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &LLMSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

func (source *LLMSource) Name() string {
	return "llm_estimate"
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type llmMacroReply struct {
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

const llmMacroPrompt = `Estimate the nutrition facts for one typical serving of "%s". ` +
	`Reply with a single JSON object and nothing else, using exactly these keys: ` +
	`{"food": string, "calories": number, "protein_g": number, "carbs_g": number, "fat_g": number}`

func (source *LLMSource) Lookup(ctx context.Context, food string) (Macros, bool, error) {
	if source.baseURL == "" || source.apiKey == "" || source.model == "" {
		// Source not configured; a clean miss lets the chain move on.
		return Macros{}, false, nil
	}

	payload := chatCompletionRequest{
		Model: source.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(llmMacroPrompt, food)},
		},
		Temperature: 0,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Macros{}, false, fmt.Errorf("encode completion request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, source.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Macros{}, false, fmt.Errorf("build completion request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+source.apiKey)

	response, err := source.httpClient.Do(request)
	if err != nil {
		return Macros{}, false, fmt.Errorf("completion request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Macros{}, false, fmt.Errorf("completion endpoint returned status %d", response.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return Macros{}, false, fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return Macros{}, false, errors.New("completion response has no choices")
	}

	reply, err := parseMacroReply(parsed.Choices[0].Message.Content)
	if err != nil {
		return Macros{}, false, err
	}

	name := strings.TrimSpace(reply.Food)
	if name == "" {
		name = food
	}

	return Macros{
		Food:     name,
		Calories: roundCalories(reply.Calories),
		ProteinG: reply.ProteinG,
		CarbsG:   reply.CarbsG,
		FatG:     reply.FatG,
	}, true, nil
}

func parseMacroReply(content string) (llmMacroReply, error) {
	object, err := firstJSONObject(content)
	if err != nil {
		return llmMacroReply{}, err
	}

	var reply llmMacroReply
	if err := json.Unmarshal([]byte(object), &reply); err != nil {
		return llmMacroReply{}, fmt.Errorf("parse macro object: %w", err)
	}
	return reply, nil
}

// firstJSONObject extracts the first balanced {...} block from free text,
// tolerating code fences and prose around the object.
func firstJSONObject(content string) (string, error) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", errors.New("reply contains no JSON object")
	}

	depth := 0
	inString := false
	escaped := false
	for index := start; index < len(content); index++ {
		char := content[index]
		if inString {
			switch {
			case escaped:
				escaped = false
			case char == '\\':
				escaped = true
			case char == '"':
				inString = false
			}
			continue
		}

		switch char {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : index+1], nil
			}
		}
	}

	return "", errors.New("reply contains an unterminated JSON object")
}
