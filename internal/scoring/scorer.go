package scoring

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/ai"
	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
)

// Breakdown carries the six per-factor scores on a 1-10 scale.
type Breakdown struct {
	Education  float64 `json:"education"`
	Trajectory float64 `json:"trajectory"`
	Company    float64 `json:"company"`
	Skills     float64 `json:"skills"`
	Location   float64 `json:"location"`
	Tenure     float64 `json:"tenure"`
}

// SkillsSummary is the candidate-facing slice of the skills analysis.
type SkillsSummary struct {
	KeyStrengths        []string `json:"key_strengths"`
	MissingSkills       []string `json:"missing_skills"`
	TechnicalMatch      float64  `json:"technical_match"`
	ExperienceRelevance float64  `json:"experience_relevance"`
	Reasoning           string   `json:"reasoning"`
}

// Result is a fully scored candidate.
type Result struct {
	Name            string            `json:"name"`
	URL             string            `json:"linkedin_url"`
	Headline        string            `json:"headline"`
	Company         string            `json:"company"`
	Location        string            `json:"location"`
	TotalScore      float64           `json:"total_score"`
	ConfidenceLevel float64           `json:"confidence_level"`
	Breakdown       Breakdown         `json:"score_breakdown"`
	WeightsUsed     map[string]string `json:"weights_used"`
	Skills          SkillsSummary     `json:"skills_analysis"`
}

// Scorer computes weighted fit scores for candidate profiles. The AI analyzer
// is optional; the keyword fallback covers its absence and its failures.
type Scorer struct {
	analyzer       ai.Analyzer
	weights        Weights
	targetLocation string
	logger         *zap.Logger
}

func NewScorer(analyzer ai.Analyzer, weights Weights, targetLocation string, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}

	return &Scorer{
		analyzer:       analyzer,
		weights:        weights,
		targetLocation: targetLocation,
		logger:         logger,
	}
}

// Score evaluates a single candidate against the job description.
func (s *Scorer) Score(ctx context.Context, profile *linkedin.Profile, jobDescription string) (*Result, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	s.logger.Debug("scoring candidate", zap.String("name", profile.Name))

	skills := s.analyzeSkills(ctx, profile, jobDescription)

	breakdown := Breakdown{
		Education:  round1(ScoreEducation(profile)),
		Trajectory: round1(ScoreTrajectory(profile)),
		Company:    round1(ScoreCompany(profile)),
		Skills:     round1(skills.OverallSkillsScore),
		Location:   round1(ScoreLocation(profile, s.targetLocation)),
		Tenure:     round1(ScoreTenure(profile)),
	}

	total := breakdown.Education*s.weights.Education +
		breakdown.Trajectory*s.weights.Trajectory +
		breakdown.Company*s.weights.Company +
		breakdown.Skills*s.weights.Skills +
		breakdown.Location*s.weights.Location +
		breakdown.Tenure*s.weights.Tenure

	return &Result{
		Name:            profile.Name,
		URL:             profile.URL,
		Headline:        profile.Headline,
		Company:         profile.Company,
		Location:        profile.Location,
		TotalScore:      round1(total),
		ConfidenceLevel: skills.ConfidenceLevel,
		Breakdown:       breakdown,
		WeightsUsed:     s.weightsUsed(),
		Skills: SkillsSummary{
			KeyStrengths:        skills.KeyStrengths,
			MissingSkills:       skills.MissingSkills,
			TechnicalMatch:      round1(skills.TechnicalSkillsMatch),
			ExperienceRelevance: round1(skills.ExperienceRelevance),
			Reasoning:           skills.Reasoning,
		},
	}, nil
}

// ScoreBatch evaluates all candidates, substituting a flat neutral score when
// a single candidate cannot be scored. A bad candidate never aborts the batch.
func (s *Scorer) ScoreBatch(ctx context.Context, profiles *linkedin.Profiles, jobDescription string) []*Result {
	results := make([]*Result, 0, profiles.Len())

	for _, profile := range profiles.Items {
		if profile == nil {
			continue
		}

		result, err := s.Score(ctx, profile, jobDescription)
		if err != nil {
			s.logger.Error("failed to score candidate",
				zap.String("name", profile.Name),
				zap.Error(err),
			)
			results = append(results, neutralResult(profile, jobDescription))
			continue
		}
		results = append(results, result)
	}

	return results
}

func (s *Scorer) analyzeSkills(ctx context.Context, profile *linkedin.Profile, jobDescription string) *ai.SkillsAnalysis {
	if s.analyzer == nil {
		return FallbackSkillsAnalysis(profile, jobDescription)
	}

	analysis, err := s.analyzer.AnalyzeSkills(ctx, ai.CandidateInfo{
		Name:     profile.Name,
		Headline: profile.Headline,
		Company:  profile.Company,
		Location: profile.Location,
	}, jobDescription)
	if err != nil {
		s.logger.Warn("AI skills analysis failed, using keyword fallback",
			zap.String("name", profile.Name),
			zap.Error(err),
		)
		return FallbackSkillsAnalysis(profile, jobDescription)
	}

	return analysis
}

func (s *Scorer) weightsUsed() map[string]string {
	return map[string]string{
		"education":  formatWeight(s.weights.Education),
		"trajectory": formatWeight(s.weights.Trajectory),
		"company":    formatWeight(s.weights.Company),
		"skills":     formatWeight(s.weights.Skills),
		"location":   formatWeight(s.weights.Location),
		"tenure":     formatWeight(s.weights.Tenure),
	}
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%g%%", w*100)
}

// neutralResult is the stand-in for a candidate that could not be scored.
func neutralResult(profile *linkedin.Profile, jobDescription string) *Result {
	const neutral = 5.0
	fallback := FallbackSkillsAnalysis(profile, jobDescription)

	return &Result{
		Name:       profile.Name,
		URL:        profile.URL,
		Headline:   profile.Headline,
		Company:    profile.Company,
		Location:   profile.Location,
		TotalScore: neutral,
		Breakdown: Breakdown{
			Education:  neutral,
			Trajectory: neutral,
			Company:    neutral,
			Skills:     neutral,
			Location:   neutral,
			Tenure:     neutral,
		},
		ConfidenceLevel: fallback.ConfidenceLevel,
		Skills: SkillsSummary{
			KeyStrengths:        fallback.KeyStrengths,
			MissingSkills:       fallback.MissingSkills,
			TechnicalMatch:      round1(fallback.TechnicalSkillsMatch),
			ExperienceRelevance: round1(fallback.ExperienceRelevance),
			Reasoning:           fallback.Reasoning,
		},
	}
}

// round1 rounds to one decimal with ties going to the even digit.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
