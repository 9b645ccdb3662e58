package scoring

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/ai"
	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
)

type stubAnalyzer struct {
	analysis *ai.SkillsAnalysis
	err      error
	calls    int
}

func (s *stubAnalyzer) AnalyzeSkills(_ context.Context, _ ai.CandidateInfo, _ string) (*ai.SkillsAnalysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func TestScorerWeightedTotal(t *testing.T) {
	stub := &stubAnalyzer{analysis: &ai.SkillsAnalysis{
		TechnicalSkillsMatch: 8.0,
		ExperienceRelevance:  8.0,
		OverallSkillsScore:   8.0,
		ConfidenceLevel:      9.0,
		KeyStrengths:         []string{"ml"},
		Reasoning:            "Strong production ML background",
	}}
	scorer := NewScorer(stub, DefaultWeights(), "", zap.NewNop())

	profile := &linkedin.Profile{
		Name:     "Test Candidate",
		Headline: "Senior Engineer",
		Company:  "Google",
		Location: "Mountain View, CA",
	}

	result, err := scorer.Score(context.Background(), profile, "job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// education 6.0, trajectory 9.0, company 9.5, skills 8.0, location 10.0,
	// tenure 8.0 under the default weights.
	if result.TotalScore != 8.2 {
		t.Fatalf("expected total 8.2, got %v", result.TotalScore)
	}

	if result.Breakdown.Company != 9.5 {
		t.Fatalf("expected company 9.5, got %v", result.Breakdown.Company)
	}

	if result.Breakdown.Location != 10.0 {
		t.Fatalf("expected location 10.0, got %v", result.Breakdown.Location)
	}

	if result.ConfidenceLevel != 9.0 {
		t.Fatalf("expected confidence 9.0, got %v", result.ConfidenceLevel)
	}

	if result.Skills.Reasoning != "Strong production ML background" {
		t.Fatalf("unexpected reasoning: %s", result.Skills.Reasoning)
	}

	if result.WeightsUsed["skills"] != "25%" {
		t.Fatalf("unexpected skills weight: %s", result.WeightsUsed["skills"])
	}

	if stub.calls != 1 {
		t.Fatalf("expected 1 analyzer call, got %d", stub.calls)
	}
}

func TestScorerFallsBackWhenAnalyzerFails(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("quota exceeded")}
	scorer := NewScorer(stub, DefaultWeights(), "", zap.NewNop())

	profile := &linkedin.Profile{
		Name:     "Test Candidate",
		Headline: "Python developer",
		Company:  "Initech",
		Location: "Remote",
	}

	result, err := scorer.Score(context.Background(), profile, "We need Python and AWS experience")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ConfidenceLevel != 6.0 {
		t.Fatalf("expected fallback confidence 6.0, got %v", result.ConfidenceLevel)
	}

	if result.Breakdown.Skills != 7.0 {
		t.Fatalf("expected fallback skills 7.0, got %v", result.Breakdown.Skills)
	}
}

func TestScorerWithoutAnalyzerUsesFallback(t *testing.T) {
	scorer := NewScorer(nil, Weights{}, "", zap.NewNop())

	profile := &linkedin.Profile{Name: "Test", Headline: "Docker specialist"}

	result, err := scorer.Score(context.Background(), profile, "Docker experience required")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Breakdown.Skills != 10.0 {
		t.Fatalf("expected skills 10.0, got %v", result.Breakdown.Skills)
	}
}

func TestScoreRequiresProfile(t *testing.T) {
	scorer := NewScorer(nil, DefaultWeights(), "", zap.NewNop())

	if _, err := scorer.Score(context.Background(), nil, "job"); err == nil {
		t.Fatalf("expected error for nil profile")
	}
}

func TestRound1TiesGoToEven(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 7.25, want: 7.2},
		{in: 7.75, want: 7.8},
		{in: 8.225, want: 8.2},
		{in: 9.5, want: 9.5},
	}

	for _, tc := range cases {
		if got := round1(tc.in); got != tc.want {
			t.Fatalf("round1(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestScoreBatchSkipsNilProfiles(t *testing.T) {
	scorer := NewScorer(nil, DefaultWeights(), "", zap.NewNop())

	profiles := &linkedin.Profiles{Items: []*linkedin.Profile{
		{Name: "A", Headline: "Engineer"},
		nil,
		{Name: "B", Headline: "Engineer"},
	}}

	results := scorer.ScoreBatch(context.Background(), profiles, "job")

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Name != "A" || results[1].Name != "B" {
		t.Fatalf("unexpected result order: %s, %s", results[0].Name, results[1].Name)
	}
}
