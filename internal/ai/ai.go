package ai

import "context"

// Generator is the minimal surface every LLM provider exposes: send a prompt,
// get the first textual response back.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// SkillsAnalysis is the structured result of evaluating a candidate profile
// against a job description.
type SkillsAnalysis struct {
	TechnicalSkillsMatch float64  `json:"technical_skills_match" mapstructure:"technical_skills_match"`
	ExperienceRelevance  float64  `json:"experience_relevance" mapstructure:"experience_relevance"`
	DomainExpertise      float64  `json:"domain_expertise" mapstructure:"domain_expertise"`
	OverallSkillsScore   float64  `json:"overall_skills_score" mapstructure:"overall_skills_score"`
	KeyStrengths         []string `json:"key_strengths" mapstructure:"key_strengths"`
	MissingSkills        []string `json:"missing_skills" mapstructure:"missing_skills"`
	ConfidenceLevel      float64  `json:"confidence_level" mapstructure:"confidence_level"`
	Reasoning            string   `json:"reasoning" mapstructure:"reasoning"`
	Raw                  string   `json:"-" mapstructure:"-"`
}

// Analyzer evaluates how well a candidate matches a job description.
type Analyzer interface {
	AnalyzeSkills(ctx context.Context, candidate CandidateInfo, jobDescription string) (*SkillsAnalysis, error)
}

// CandidateInfo carries the profile fields the analyzer feeds into the prompt.
type CandidateInfo struct {
	Name     string
	Headline string
	Company  string
	Location string
}
