package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/synapse-ai/sourcing-agent/internal/ai"
	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
)

// skillPattern recognizes the fixed tech vocabulary in free text. Word
// boundaries keep short terms like "ai" from matching inside other words.
var skillPattern = regexp.MustCompile(`\b(?:python|javascript|react|node|sql|aws|docker|kubernetes|` +
	`machine learning|ai|tensorflow|pytorch|data science|backend|` +
	`frontend|full stack|devops|cloud|microservices|api|database)\b`)

const fallbackConfidence = 6.0

// FallbackSkillsAnalysis scores skills by keyword overlap between the job
// description and the profile. Used when no AI analyzer is available or the
// AI call failed.
func FallbackSkillsAnalysis(profile *linkedin.Profile, jobDescription string) *ai.SkillsAnalysis {
	jobKeywords := uniqueMatches(jobDescription)
	profileKeywords := uniqueMatches(profile.Headline + " " + profile.Company)

	matching := intersect(jobKeywords, profileKeywords)

	score := 7.0
	if len(jobKeywords) > 0 {
		ratio := float64(len(matching)) / float64(len(jobKeywords))
		score = 4.0 + ratio*6.0
		if score > 10.0 {
			score = 10.0
		}
	}

	return &ai.SkillsAnalysis{
		TechnicalSkillsMatch: score,
		ExperienceRelevance:  score,
		DomainExpertise:      score * 0.9,
		OverallSkillsScore:   score,
		KeyStrengths:         head(profileKeywords, 3),
		MissingSkills:        head(subtract(jobKeywords, profileKeywords), 2),
		ConfidenceLevel:      fallbackConfidence,
		Reasoning:            fmt.Sprintf("Keyword-based analysis found %d matching skills", len(matching)),
	}
}

func uniqueMatches(text string) []string {
	matches := skillPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(matches))
	unique := make([]string, 0, len(matches))
	for _, match := range matches {
		if !seen[match] {
			seen[match] = true
			unique = append(unique, match)
		}
	}
	return unique
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, item := range b {
		set[item] = true
	}

	var result []string
	for _, item := range a {
		if set[item] {
			result = append(result, item)
		}
	}
	return result
}

func subtract(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, item := range b {
		set[item] = true
	}

	var result []string
	for _, item := range a {
		if !set[item] {
			result = append(result, item)
		}
	}
	return result
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
