package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/ai"
	"github.com/synapse-ai/sourcing-agent/internal/ai/gemini"
	"github.com/synapse-ai/sourcing-agent/internal/ai/groq"
	"github.com/synapse-ai/sourcing-agent/internal/filtering"
	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
	"github.com/synapse-ai/sourcing-agent/internal/logger"
	"github.com/synapse-ai/sourcing-agent/internal/outreach"
	"github.com/synapse-ai/sourcing-agent/internal/scoring"
	"github.com/synapse-ai/sourcing-agent/internal/secrets"
	"github.com/synapse-ai/sourcing-agent/internal/sourcing"
)

// Outreach wants a warmer completion than skills analysis.
const (
	analysisMaxTokens   = 500
	analysisTemperature = 0.3
	outreachMaxTokens   = 400
	outreachTemperature = 0.7
)

// buildAgent wires the complete sourcing pipeline from the config. AI
// generators are optional: with no usable provider the pipeline falls back to
// keyword scoring and templated messages.
func buildAgent(ctx context.Context, config *Config, log *zap.Logger) (*sourcing.Agent, outreach.Recruiter, error) {
	if config == nil {
		config = &Config{}
	}

	analyzerGen, writerGen, err := newGenerators(ctx, config.AI)
	if err != nil {
		log.Warn("AI provider unavailable, using fallback scoring and templates", zap.Error(err))
	}

	var analyzer ai.Analyzer
	if analyzerGen != nil {
		maxLogLen := 0
		if config.AI != nil && config.AI.Groq != nil {
			maxLogLen = config.AI.Groq.MaxLogLength
		}
		aiLogger := logger.WithCommonFields(log, providerName(config.AI), analyzerGen.Model())
		analyzer = ai.NewSkillsAnalyzer(analyzerGen, aiLogger, maxLogLen)
	}

	weights := scoring.DefaultWeights()
	if config.Weights != nil {
		weights = *config.Weights
	}

	recruiter := outreach.DefaultRecruiter()
	if config.Recruiter != nil {
		recruiter = *config.Recruiter
	}

	searcher := linkedin.NewSearcher(log, config.MaxCandidates)
	scorer := scoring.NewScorer(analyzer, weights, config.TargetLocation, log)
	generator := outreach.NewGenerator(writerGen, recruiter, log)

	filterCfg := filtering.Config{
		ExcludedCompanies: config.ExcludeCompanies,
	}

	return sourcing.New(searcher, scorer, generator, filterCfg, log), recruiter, nil
}

// newGenerators returns the content generators for skills analysis and
// outreach writing. Both are nil when AI is disabled or misconfigured.
func newGenerators(ctx context.Context, cfg *AIConfig) (analyzer, writer ai.Generator, err error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil, nil
	}

	switch providerName(cfg) {
	case "groq":
		if cfg.Groq == nil {
			return nil, nil, fmt.Errorf("groq configuration is required when ai is enabled")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "groq api key",
			File: cfg.Groq.APIKeyFile,
			Env:  "GROQ_API_KEY",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set ai.groq.api-key-file or GROQ_API_KEY)", err)
		}

		analyzerGen, err := groq.NewGenerator(apiKey, cfg.Groq.BaseURL, cfg.Groq.Model, cfg.Groq.MaxRetries,
			groq.WithMaxTokens(analysisMaxTokens),
			groq.WithTemperature(analysisTemperature),
		)
		if err != nil {
			return nil, nil, err
		}

		writerGen, err := groq.NewGenerator(apiKey, cfg.Groq.BaseURL, cfg.Groq.Model, cfg.Groq.MaxRetries,
			groq.WithMaxTokens(outreachMaxTokens),
			groq.WithTemperature(outreachTemperature),
		)
		if err != nil {
			return nil, nil, err
		}

		return analyzerGen, writerGen, nil

	case "gemini":
		if cfg.Gemini == nil {
			return nil, nil, fmt.Errorf("gemini configuration is required when ai is enabled")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		gen, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}

		return gen, gen, nil

	default:
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

func providerName(cfg *AIConfig) string {
	if cfg == nil {
		return ""
	}
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = "groq"
	}
	return provider
}
