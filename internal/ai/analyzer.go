package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/logger"
)

//go:embed skills_prompt.md
var skillsPromptTemplate string

const (
	defaultMaxLogLength = 200

	// defaultScore fills numeric fields the model omitted or mangled.
	defaultScore = 7.0
)

// SkillsAnalyzer turns a raw content generator into a structured skills
// assessor. The prompt asks for strict JSON; the parser is defensive anyway.
type SkillsAnalyzer struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewSkillsAnalyzer(generator Generator, log *zap.Logger, maxLogLength int) *SkillsAnalyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &SkillsAnalyzer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (a *SkillsAnalyzer) AnalyzeSkills(ctx context.Context, candidate CandidateInfo, jobDescription string) (*SkillsAnalysis, error) {
	if a.generator == nil {
		return nil, fmt.Errorf("content generator is required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description must not be empty")
	}

	prompt := buildSkillsPrompt(candidate, jobDescription)

	a.logger.Debug("skills analysis request",
		zap.String("candidate", candidate.Name),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate skills analysis: %w", err)
	}

	a.logger.Debug("skills analysis response",
		zap.String("candidate", candidate.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	analysis, err := ParseSkillsResponse(raw)
	if err != nil {
		return nil, err
	}

	return analysis, nil
}

func buildSkillsPrompt(candidate CandidateInfo, jobDescription string) string {
	template := skillsPromptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{NAME}} {{HEADLINE}} {{COMPANY}} {{LOCATION}}\n\nJob:\n{{JOB_DESCRIPTION}}\n\nJSON Response:"
	}

	replacer := strings.NewReplacer(
		"{{NAME}}", candidate.Name,
		"{{HEADLINE}}", candidate.Headline,
		"{{COMPANY}}", candidate.Company,
		"{{LOCATION}}", candidate.Location,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)

	return replacer.Replace(template)
}

// ParseSkillsResponse decodes the model output into a SkillsAnalysis. Scores
// are clamped to [1, 10] and numeric fields the model dropped fall back to the
// default score.
func ParseSkillsResponse(raw string) (*SkillsAnalysis, error) {
	cleaned := ExtractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse skills analysis response: %w", err)
	}

	var analysis SkillsAnalysis
	cfg := &mapstructure.DecoderConfig{
		Result:           &analysis,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build skills analysis decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode skills analysis: %w", err)
	}

	analysis.TechnicalSkillsMatch = normalizeScore(data, "technical_skills_match", analysis.TechnicalSkillsMatch)
	analysis.ExperienceRelevance = normalizeScore(data, "experience_relevance", analysis.ExperienceRelevance)
	analysis.DomainExpertise = normalizeScore(data, "domain_expertise", analysis.DomainExpertise)
	analysis.OverallSkillsScore = normalizeScore(data, "overall_skills_score", analysis.OverallSkillsScore)
	analysis.ConfidenceLevel = normalizeScore(data, "confidence_level", analysis.ConfidenceLevel)
	analysis.Reasoning = strings.TrimSpace(analysis.Reasoning)
	analysis.Raw = raw

	return &analysis, nil
}

func normalizeScore(data map[string]any, key string, value float64) float64 {
	if _, ok := data[key]; !ok {
		return defaultScore
	}
	return ClampScore(value)
}

// ClampScore forces a score into the 1..10 range.
func ClampScore(score float64) float64 {
	if score < 1.0 {
		return 1.0
	}
	if score > 10.0 {
		return 10.0
	}
	return score
}

// ExtractJSON strips markdown code fences the model sometimes wraps around a
// JSON payload.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
