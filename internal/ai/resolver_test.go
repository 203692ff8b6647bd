package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type modelReply struct {
	status int
	text   string // response text on 200, error message otherwise
}

// fakeGemini serves the upload and generateContent endpoints and records the
// order of models asked.
type fakeGemini struct {
	replies  map[string]modelReply
	requests int
	asked    []string
}

func (f *fakeGemini) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		if strings.HasPrefix(r.URL.Path, "/upload/v1beta/files") {
			fmt.Fprint(w, `{"file":{"uri":"files/chart-1"}}`)
			return
		}
		// /v1beta/models/<model>:generateContent
		name := strings.TrimPrefix(r.URL.Path, "/v1beta/models/")
		name = strings.TrimSuffix(name, ":generateContent")
		f.asked = append(f.asked, name)

		reply, ok := f.replies[name]
		if !ok {
			reply = modelReply{status: http.StatusNotFound, text: "model not found"}
		}
		if reply.status != http.StatusOK {
			w.WriteHeader(reply.status)
			fmt.Fprintf(w, `{"error":{"code":%d,"message":%q}}`, reply.status, reply.text)
			return
		}
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, reply.text)
	})
}

func newTestResolver(t *testing.T, fake *fakeGemini, apiKey string, models []string) (*Resolver, string) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	chartPath := filepath.Join(t.TempDir(), "TEST.png")
	if err := os.WriteFile(chartPath, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	client := NewGeminiClient(apiKey, "")
	client.BaseURL = srv.URL
	return NewResolver(client, models), chartPath
}

func TestAnalyze_EmptyKeyNoNetwork(t *testing.T) {
	fake := &fakeGemini{}
	r, chartPath := newTestResolver(t, fake, "", nil)

	got := r.Analyze(context.Background(), chartPath, "")
	if got != NoKeyResult {
		t.Fatalf("expected %q, got %q", NoKeyResult, got)
	}
	if fake.requests != 0 {
		t.Fatalf("expected no network calls, got %d", fake.requests)
	}
}

func TestAnalyze_FallsBackToThirdModel(t *testing.T) {
	fake := &fakeGemini{replies: map[string]modelReply{
		"m1": {status: http.StatusNotFound, text: "models/m1 is not found"},
		"m2": {status: http.StatusNotFound, text: "models/m2 is not found"},
		"m3": {status: http.StatusOK, text: "Score: 8 Reasoning: clean handle."},
		"m4": {status: http.StatusOK, text: "should never be asked"},
	}}
	r, chartPath := newTestResolver(t, fake, "test-key", []string{"m1", "m2", "m3", "m4"})

	got := r.Analyze(context.Background(), chartPath, "prompt")
	if got != "Score: 8 Reasoning: clean handle." {
		t.Fatalf("unexpected result: %q", got)
	}
	want := []string{"m1", "m2", "m3"}
	if len(fake.asked) != len(want) {
		t.Fatalf("expected models %v asked, got %v", want, fake.asked)
	}
	for i := range want {
		if fake.asked[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], fake.asked[i])
		}
	}
}

func TestAnalyze_AuthErrorAbortsImmediately(t *testing.T) {
	fake := &fakeGemini{replies: map[string]modelReply{
		"m1": {status: http.StatusUnauthorized, text: "API key invalid"},
		"m2": {status: http.StatusOK, text: "should never be asked"},
	}}
	r, chartPath := newTestResolver(t, fake, "bad-key", []string{"m1", "m2"})

	got := r.Analyze(context.Background(), chartPath, "prompt")
	if !strings.HasPrefix(got, "AI Error (m1):") {
		t.Fatalf("expected immediate auth failure, got %q", got)
	}
	if len(fake.asked) != 1 {
		t.Fatalf("expected exactly one model asked, got %v", fake.asked)
	}
}

func TestAnalyze_AllModelsExhausted(t *testing.T) {
	fake := &fakeGemini{replies: map[string]modelReply{
		"m1": {status: http.StatusNotFound, text: "models/m1 is not found"},
		"m2": {status: http.StatusNotFound, text: "models/m2 is not found"},
	}}
	r, chartPath := newTestResolver(t, fake, "test-key", []string{"m1", "m2"})

	got := r.Analyze(context.Background(), chartPath, "prompt")
	if !strings.HasPrefix(got, "AI Error: could not find a working model.") {
		t.Fatalf("unexpected result: %q", got)
	}
	if !strings.Contains(got, "m2") {
		t.Errorf("expected last error to mention m2, got %q", got)
	}
}
