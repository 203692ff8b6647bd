package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// NoKeyResult is returned when AI verification is requested without a key.
const NoKeyResult = "No API Key provided."

// DefaultPrompt asks the model to grade a cup-and-handle candidate chart.
const DefaultPrompt = `You are a professional technical analyst. Look at this stock chart. I am looking for a 'Cup and Handle' pattern where the handle is currently forming (bull flag). 1. Is this a valid Cup and Handle formation? 2. Is the handle forming constructively (drifting down/stabilizing) or is it broken? 3. Rate your confidence from 0 to 10 that this is a high-quality setup ready for a breakout. Return your answer in this format: Score: [0-10] Reasoning: [One sentence explanation]`

// DefaultModels lists candidate model identifiers in priority order: fast tier
// first, then its latest alias, the pro tier, and the legacy vision tiers.
var DefaultModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro",
	"gemini-pro",
	"gemini-1.0-pro-vision-latest",
	"gemini-pro-vision",
}

// Resolver tries an ordered list of model identifiers and returns the first
// usable response. Model availability churns over time, so unavailable
// identifiers are skipped; every other failure class aborts immediately.
type Resolver struct {
	Client *GeminiClient
	Models []string
}

// NewResolver creates a Resolver over the given candidate models. An empty
// model list falls back to DefaultModels.
func NewResolver(client *GeminiClient, models []string) *Resolver {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Resolver{Client: client, Models: models}
}

// Enabled reports whether an API key is configured.
func (r *Resolver) Enabled() bool {
	return r.Client != nil && r.Client.APIKey != ""
}

// Analyze uploads the chart and asks each candidate model in turn, returning
// the first successful response text. AI verification is advisory, so every
// failure is folded into the returned string rather than an error: the caller
// keeps the setup either way.
func (r *Resolver) Analyze(ctx context.Context, chartPath, prompt string) string {
	if !r.Enabled() {
		return NoKeyResult
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	lastErr := ""
	for _, modelID := range r.Models {
		text, err := r.tryModel(ctx, modelID, chartPath, prompt)
		if err == nil {
			return text
		}
		if isModelUnavailable(err) {
			log.Printf("[WARN] model %s unavailable, trying next: %v", modelID, err)
			lastErr = err.Error()
			continue
		}
		return fmt.Sprintf("AI Error (%s): %v", modelID, err)
	}
	return fmt.Sprintf("AI Error: could not find a working model. Last error: %s", lastErr)
}

func (r *Resolver) tryModel(ctx context.Context, modelID, chartPath, prompt string) (string, error) {
	fileURI, err := r.Client.UploadFile(ctx, chartPath)
	if err != nil {
		return "", err
	}
	return r.Client.GenerateContent(ctx, modelID, fileURI, prompt)
}

// isModelUnavailable distinguishes "try the next candidate" from "abort now".
// Unknown or retired model identifiers surface as 404/not-found responses;
// anything else (auth, quota, malformed request) must not be masked.
func isModelUnavailable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}
