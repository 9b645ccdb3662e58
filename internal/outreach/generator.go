package outreach

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/ai"
	"github.com/synapse-ai/sourcing-agent/internal/scoring"
)

//go:embed outreach_prompt.md
var messagePromptTemplate string

const (
	// jobSummaryLimit bounds how much of the job description goes into the prompt.
	jobSummaryLimit = 500

	defaultTopN = 3
)

// Recruiter is the persona outreach messages are written as.
type Recruiter struct {
	Name     string `json:"name" mapstructure:"name"`
	Title    string `json:"title" mapstructure:"title"`
	Company  string `json:"company" mapstructure:"company"`
	LinkedIn string `json:"linkedin" mapstructure:"linkedin"`
	Email    string `json:"email" mapstructure:"email"`
}

// DefaultRecruiter returns the built-in recruiter persona.
func DefaultRecruiter() Recruiter {
	return Recruiter{
		Name:     "Alex Chen",
		Title:    "Senior Technical Recruiter",
		Company:  "Windsurf",
		LinkedIn: "https://linkedin.com/in/alex-chen-recruiter",
		Email:    "alex.chen@windsurf.com",
	}
}

// Message is a generated outreach message for a single candidate.
type Message struct {
	CandidateName           string   `json:"candidate_name"`
	Text                    string   `json:"message"`
	Length                  int      `json:"message_length"`
	PersonalizationElements []string `json:"personalization_elements"`
}

// Generator writes personalized outreach messages. When the writer is absent
// or fails, a deterministic template takes over.
type Generator struct {
	writer    ai.Generator
	recruiter Recruiter
	logger    *zap.Logger
}

func NewGenerator(writer ai.Generator, recruiter Recruiter, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recruiter == (Recruiter{}) {
		recruiter = DefaultRecruiter()
	}

	return &Generator{
		writer:    writer,
		recruiter: recruiter,
		logger:    logger,
	}
}

func (g *Generator) Recruiter() Recruiter {
	return g.recruiter
}

// Generate produces an outreach message for a scored candidate.
func (g *Generator) Generate(ctx context.Context, candidate *scoring.Result, jobDescription string) *Message {
	if g.writer == nil {
		return g.fallback(candidate, "no message writer configured")
	}

	prompt := g.buildPrompt(candidate, jobDescription)

	raw, err := g.writer.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Error("message generation failed",
			zap.String("candidate", candidate.Name),
			zap.Error(err),
		)
		msg := g.fallback(candidate, err.Error())
		// Signal the failure the same way downstream consumers expect it.
		msg.Length = 0
		msg.PersonalizationElements = []string{"Fallback template used"}
		return msg
	}

	text := CleanMessage(raw)

	return &Message{
		CandidateName:           candidate.Name,
		Text:                    text,
		Length:                  len(text),
		PersonalizationElements: g.analyzePersonalization(text, candidate),
	}
}

// GenerateBatch produces messages for the top N candidates in ranked order.
func (g *Generator) GenerateBatch(ctx context.Context, candidates []*scoring.Result, jobDescription string, topN int) []*Message {
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > len(candidates) {
		topN = len(candidates)
	}

	messages := make([]*Message, 0, topN)
	for _, candidate := range candidates[:topN] {
		g.logger.Info("generating outreach message", zap.String("candidate", candidate.Name))
		messages = append(messages, g.Generate(ctx, candidate, jobDescription))
	}

	return messages
}

func (g *Generator) buildPrompt(candidate *scoring.Result, jobDescription string) string {
	summary := jobDescription
	if len(summary) > jobSummaryLimit {
		summary = summary[:jobSummaryLimit] + "..."
	}

	headline := candidate.Headline
	if reasoning := strings.TrimSpace(candidate.Skills.Reasoning); reasoning != "" {
		headline = reasoning
	}

	replacer := strings.NewReplacer(
		"{{RECRUITER_NAME}}", g.recruiter.Name,
		"{{RECRUITER_TITLE}}", g.recruiter.Title,
		"{{RECRUITER_COMPANY}}", g.recruiter.Company,
		"{{RECRUITER_LINKEDIN}}", g.recruiter.LinkedIn,
		"{{RECRUITER_EMAIL}}", g.recruiter.Email,
		"{{CANDIDATE_NAME}}", candidate.Name,
		"{{CANDIDATE_HEADLINE}}", headline,
		"{{CANDIDATE_COMPANY}}", candidate.Company,
		"{{CANDIDATE_LOCATION}}", candidate.Location,
		"{{JOB_SUMMARY}}", summary,
	)

	return replacer.Replace(messagePromptTemplate)
}

func (g *Generator) fallback(candidate *scoring.Result, reason string) *Message {
	g.logger.Debug("using fallback outreach template",
		zap.String("candidate", candidate.Name),
		zap.String("reason", reason),
	)

	text := g.fallbackText(candidate)

	return &Message{
		CandidateName:           candidate.Name,
		Text:                    text,
		Length:                  len(text),
		PersonalizationElements: g.analyzePersonalization(text, candidate),
	}
}

func (g *Generator) fallbackText(candidate *scoring.Result) string {
	return fmt.Sprintf(`Hi %s,

I came across your profile and was impressed by your experience as %s at %s. Your background aligns perfectly with an exciting opportunity we have at %s.

%s is looking for talented engineers like yourself. I'd love to discuss how your experience at %s could contribute to our mission. Would you be open to a brief conversation about this opportunity?

Best regards,
%s | %s at %s
LinkedIn: %s
Email: %s`,
		candidate.Name,
		candidate.Headline,
		candidate.Company,
		g.recruiter.Company,
		g.recruiter.Company,
		candidate.Company,
		g.recruiter.Name,
		g.recruiter.Title,
		g.recruiter.Company,
		g.recruiter.LinkedIn,
		g.recruiter.Email,
	)
}

func (g *Generator) analyzePersonalization(message string, candidate *scoring.Result) []string {
	var elements []string
	lower := strings.ToLower(message)

	if first := firstName(candidate.Name); first != "" && strings.Contains(message, first) {
		elements = append(elements, "First name usage")
	}
	if candidate.Company != "" && strings.Contains(message, candidate.Company) {
		elements = append(elements, fmt.Sprintf("Company mention (%s)", candidate.Company))
	}
	if containsAny(lower, "experience", "background", "work") {
		elements = append(elements, "Experience reference")
	}
	if containsAny(lower, "ml", "machine learning", "ai", "engineer") {
		elements = append(elements, "Technical skills match")
	}
	if containsAny(lower, strings.ToLower(g.recruiter.Company), "mountain view", "compensation") {
		elements = append(elements, "Company-specific details")
	}

	return elements
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// introPrefixes are boilerplate openers models prepend despite instructions.
var introPrefixes = []string{
	"Here's a personalized LinkedIn outreach message:",
	"Here is a personalized LinkedIn outreach message:",
	"Here's a LinkedIn outreach message:",
	"Here is a LinkedIn outreach message:",
	"Here's an outreach message:",
	"Here is an outreach message:",
	"Here's a message:",
	"Here is a message:",
	"Here's the message:",
	"Here is the message:",
	"Here's a personalized message:",
	"Here is a personalized message:",
}

// CleanMessage strips known introductory boilerplate from a generated message.
// If the message still opens with narration, it is cut down to the first line
// that looks like a greeting.
func CleanMessage(message string) string {
	message = strings.TrimSpace(message)

	for _, intro := range introPrefixes {
		if strings.HasPrefix(strings.ToLower(message), strings.ToLower(intro)) {
			message = strings.TrimSpace(message[len(intro):])
		}
	}

	lower := strings.ToLower(message)
	if strings.HasPrefix(lower, "here") || strings.HasPrefix(lower, "this") {
		lines := strings.Split(message, "\n")
		for i, line := range lines {
			trimmed := strings.ToLower(strings.TrimSpace(line))
			if strings.HasPrefix(trimmed, "hi ") || strings.HasPrefix(trimmed, "hello ") || strings.HasPrefix(trimmed, "dear ") {
				message = strings.TrimSpace(strings.Join(lines[i:], "\n"))
				break
			}
		}
	}

	return message
}
