package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// GeminiClient talks to the Google Generative Language REST API.
type GeminiClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewGeminiClient creates a client with optional proxy support.
func NewGeminiClient(apiKey, proxyURL string) *GeminiClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GeminiClient{
		BaseURL: "https://generativelanguage.googleapis.com",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
	}
}

// UploadFile uploads an image to the Gemini file API and returns its file URI.
func (c *GeminiClient) UploadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read chart file: %w", err)
	}

	u := fmt.Sprintf("%s/upload/v1beta/files?key=%s", c.BaseURL, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("Content-Type", "image/png")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini upload: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		File struct {
			URI string `json:"uri"`
		} `json:"file"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("gemini decode upload response: %w", err)
	}
	if payload.File.URI == "" {
		return "", fmt.Errorf("gemini upload: empty file uri in response")
	}
	return payload.File.URI, nil
}

// GenerateContent submits the uploaded image and prompt to one model and
// returns the response text.
func (c *GeminiClient) GenerateContent(ctx context.Context, modelID, fileURI, prompt string) (string, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"file_data": map[string]string{
						"mime_type": "image/png",
						"file_uri":  fileURI,
					}},
					{"text": prompt},
				},
			},
		},
	}
	bb, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.BaseURL, url.PathEscape(modelID), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini generate: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("gemini decode response: %w", err)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return payload.Candidates[0].Content.Parts[0].Text, nil
}
