package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/your-org/ai-gateway/internal/version"
	"github.com/your-org/ai-gateway/pkg/providers"
)

// Fixed sampling temperatures per task.
const (
	temperatureTranslate = 0.3
	temperatureSummarize = 0.2
	temperatureCode      = 0.1
	temperatureChat      = 0.7
)

type generateRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
	Model         string `json:"model"`
	Provider      string `json:"provider"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	resp, err := a.generate(r.Context(), req.Prompt, intOr(req.MaxTokens, 100), floatOr(req.Temperature, 0.7))
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error generating text: %v", err))
		return
	}

	out := generateResponse{Model: a.modelOf(resp), Provider: a.sel.Name}
	if strings.HasPrefix(resp.Text, "Error:") {
		out.Error = resp.Text
	} else {
		out.GeneratedText = resp.Text
		out.Success = true
	}
	a.writeJSON(w, http.StatusOK, out)
}

func (a *App) handleProvider(w http.ResponseWriter, _ *http.Request) {
	status := "active"
	if a.sel.Provider == nil {
		status = "inactive"
	}
	body := map[string]any{
		"provider":   a.sel.Name,
		"status":     status,
		"message":    fmt.Sprintf("Using %s API", a.sel.Name),
		"configured": a.sel.Configured,
	}
	if lister, ok := a.sel.Provider.(interface{ AvailableModels() []string }); ok {
		body["available_models"] = lister.AvailableModels()
	}
	a.writeJSON(w, http.StatusOK, body)
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// Task endpoints return the provider text verbatim, including "Error:"
// strings; only /ai/generate reshapes failures into an envelope. Callers
// of these endpoints must inspect the text themselves.
func (a *App) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		a.writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		a.writeError(w, http.StatusBadRequest, "target_language is required")
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = "auto"
	}

	prompt := fmt.Sprintf("Translate the following text from %s to %s: %s",
		req.SourceLanguage, req.TargetLanguage, req.Text)
	resp, err := a.generate(r.Context(), prompt, 100, temperatureTranslate)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"original_text":   req.Text,
		"translated_text": resp.Text,
		"source_language": req.SourceLanguage,
		"target_language": req.TargetLanguage,
		"model":           a.modelOf(resp),
	})
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length"`
}

func (a *App) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		a.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	prompt := fmt.Sprintf("Please summarize the following text concisely: %s", req.Text)
	resp, err := a.generate(r.Context(), prompt, intOr(req.MaxLength, 100), temperatureSummarize)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"original_length": len(req.Text),
		"summary":         resp.Text,
		"summary_length":  len(resp.Text),
		"model":           a.modelOf(resp),
	})
}

type codeRequest struct {
	Instruction string `json:"instruction"`
	Language    string `json:"language"`
	MaxTokens   *int   `json:"max_tokens"`
}

func (a *App) handleGenerateCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Instruction) == "" {
		a.writeError(w, http.StatusBadRequest, "instruction is required")
		return
	}
	if req.Language == "" {
		req.Language = "python"
	}

	prompt := fmt.Sprintf("Write %s code that: %s. Provide only the code with comments.",
		req.Language, req.Instruction)
	resp, err := a.generate(r.Context(), prompt, intOr(req.MaxTokens, 150), temperatureCode)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"instruction": req.Instruction,
		"language":    req.Language,
		"code":        resp.Text,
		"model":       a.modelOf(resp),
	})
}

type chatRequest struct {
	Message   string `json:"message"`
	MaxTokens *int   `json:"max_tokens"`
}

func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		a.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := a.generate(r.Context(), req.Message, intOr(req.MaxTokens, 100), temperatureChat)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"user_message": req.Message,
		"ai_response":  resp.Text,
		"model":        a.modelOf(resp),
	})
}

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Welcome to AI API Service!",
		"status":       "healthy",
		"version":      version.Version,
		"provider":     a.sel.Name,
		"model":        a.sel.Model,
		"health_check": "/health",
	})
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"service":     a.cfg.App.Name,
		"environment": a.cfg.App.Env,
	})
}

func (a *App) handleInfo(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{
		"api_name":           "AI API Service",
		"version":            version.Version,
		"environment":        a.cfg.App.Env,
		"ai_provider":        a.sel.Name,
		"model":              a.sel.Model,
		"api_key_configured": a.sel.Configured,
	})
}

// generate bounds the provider call by the configured request timeout and
// records the call metric.
func (a *App) generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (providers.GenerateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.RequestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := a.sel.Provider.Generate(ctx, providers.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	outcome := "ok"
	if err != nil || strings.HasPrefix(resp.Text, "Error") {
		outcome = "error"
	}
	a.rec.ObserveProviderCall(a.sel.Name, outcome, time.Since(start))

	return resp, err
}

// modelOf prefers the model the provider actually used over the
// statically configured one.
func (a *App) modelOf(resp providers.GenerateResponse) string {
	if resp.Model != "" {
		return resp.Model
	}
	return a.sel.Model
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (a *App) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Warnw("write response failed", "error", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]any{"error": msg})
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
