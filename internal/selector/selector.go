// Package selector decides which generation provider serves traffic. The
// decision is made exactly once at process startup and injected into the
// HTTP layer; there is no re-selection or health-based failover later.
package selector

import (
	"github.com/your-org/ai-gateway/internal/config"
	"github.com/your-org/ai-gateway/internal/metrics"
	"github.com/your-org/ai-gateway/pkg/logger"
	"github.com/your-org/ai-gateway/pkg/providers"
	"github.com/your-org/ai-gateway/pkg/providers/groq"
	"github.com/your-org/ai-gateway/pkg/providers/huggingface"
	"github.com/your-org/ai-gateway/pkg/providers/mock"
)

// Selection is the provider decision for the lifetime of the process.
type Selection struct {
	Name       string
	Provider   providers.Provider
	Model      string
	Configured bool
}

// Choose walks the fallback chain: Groq when its key is present, then
// Hugging Face when any of its settings are present, then the mock
// responder. Construction failures skip a provider, they never fail
// startup.
func Choose(cfg *config.Config, log *logger.Logger, rec metrics.Recorder) Selection {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	configured := cfg.Groq.APIKey != "" || cfg.HuggingFace.APIKey != ""

	if client, err := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, ""); err == nil {
		log.Infow("using Groq API provider", "model", client.Model())
		return Selection{Name: "groq", Provider: client, Model: client.Model(), Configured: configured}
	} else if cfg.Groq.APIKey != "" {
		log.Warnw("Groq initialization failed, falling back to Hugging Face", "error", err)
	}

	if cfg.HuggingFace.Configured() {
		if cfg.HuggingFace.APIKey == "" {
			log.Warn("HUGGINGFACE_API_KEY not found, requests will be unauthenticated")
		}
		client := huggingface.NewClient(cfg.HuggingFace.APIKey, cfg.HuggingFace.Model, nil, "")
		client.RetryHook = func(model string) { rec.ObserveModelRetry(model) }
		if cfg.HuggingFace.CatalogPath != "" {
			if catalog, err := huggingface.LoadCatalog(cfg.HuggingFace.CatalogPath); err == nil {
				client.SetCatalog(catalog)
			} else {
				log.Warnw("model catalog load failed, keeping built-in table", "error", err)
			}
		}
		log.Infow("using Hugging Face API provider", "model", client.Model())
		return Selection{Name: "huggingface", Provider: client, Model: client.Model(), Configured: configured}
	}

	log.Warn("no AI provider configured, using mock responder")
	return Selection{Name: "mock", Provider: mock.New(), Model: "mock", Configured: configured}
}
