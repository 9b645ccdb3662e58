package outreach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/scoring"
)

type stubWriter struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubWriter) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubWriter) Model() string {
	return "stub-model"
}

func testCandidate() *scoring.Result {
	return &scoring.Result{
		Name:     "Sarah Chen",
		URL:      "https://linkedin.com/in/sarah-chen-ml",
		Headline: "Senior ML Engineer at OpenAI",
		Company:  "OpenAI",
		Location: "San Francisco, CA",
		Skills: scoring.SkillsSummary{
			Reasoning: "Strong production ML background with LLM experience",
		},
	}
}

func TestGenerate(t *testing.T) {
	stub := &stubWriter{response: "Hi Sarah,\n\nYour experience at OpenAI caught my eye. Windsurf is hiring ML engineers in Mountain View.\n\nBest,\nAlex"}
	generator := NewGenerator(stub, Recruiter{}, zap.NewNop())

	msg := generator.Generate(context.Background(), testCandidate(), "ML Research role at Windsurf")

	if msg.CandidateName != "Sarah Chen" {
		t.Fatalf("unexpected candidate name: %s", msg.CandidateName)
	}

	if msg.Length != len(msg.Text) {
		t.Fatalf("expected length %d, got %d", len(msg.Text), msg.Length)
	}

	if !strings.Contains(stub.lastPrompt, "Sarah Chen") {
		t.Fatalf("expected candidate name in prompt")
	}

	// the skills reasoning replaces the raw headline in the prompt
	if !strings.Contains(stub.lastPrompt, "Strong production ML background") {
		t.Fatalf("expected skills reasoning in prompt")
	}

	elements := strings.Join(msg.PersonalizationElements, "; ")
	if !strings.Contains(elements, "First name usage") {
		t.Fatalf("expected first name element, got %v", msg.PersonalizationElements)
	}
	if !strings.Contains(elements, "Company mention (OpenAI)") {
		t.Fatalf("expected company element, got %v", msg.PersonalizationElements)
	}
}

func TestGenerateTruncatesJobSummary(t *testing.T) {
	stub := &stubWriter{response: "Hi Sarah,\n\nhello"}
	generator := NewGenerator(stub, Recruiter{}, zap.NewNop())

	longJob := strings.Repeat("x", 600)
	generator.Generate(context.Background(), testCandidate(), longJob)

	if strings.Contains(stub.lastPrompt, longJob) {
		t.Fatalf("expected job description to be truncated in prompt")
	}

	if !strings.Contains(stub.lastPrompt, strings.Repeat("x", 500)+"...") {
		t.Fatalf("expected 500 char summary with ellipsis")
	}
}

func TestGenerateWithoutWriterUsesFallback(t *testing.T) {
	generator := NewGenerator(nil, Recruiter{}, zap.NewNop())

	msg := generator.Generate(context.Background(), testCandidate(), "job")

	if !strings.Contains(msg.Text, "Hi Sarah Chen,") {
		t.Fatalf("expected fallback greeting, got: %s", msg.Text)
	}

	if !strings.Contains(msg.Text, "Alex Chen | Senior Technical Recruiter at Windsurf") {
		t.Fatalf("expected recruiter signature, got: %s", msg.Text)
	}

	if msg.Length != len(msg.Text) {
		t.Fatalf("expected length to match text")
	}
}

func TestGenerateWriterFailureFallsBack(t *testing.T) {
	stub := &stubWriter{err: errors.New("rate limited")}
	generator := NewGenerator(stub, Recruiter{}, zap.NewNop())

	msg := generator.Generate(context.Background(), testCandidate(), "job")

	if msg.Length != 0 {
		t.Fatalf("expected zero length marker, got %d", msg.Length)
	}

	if len(msg.PersonalizationElements) != 1 || msg.PersonalizationElements[0] != "Fallback template used" {
		t.Fatalf("unexpected elements: %v", msg.PersonalizationElements)
	}

	if !strings.Contains(msg.Text, "Hi Sarah Chen,") {
		t.Fatalf("expected fallback text, got: %s", msg.Text)
	}
}

func TestGenerateBatch(t *testing.T) {
	stub := &stubWriter{response: "Hi there,\n\nhello"}
	generator := NewGenerator(stub, Recruiter{}, zap.NewNop())

	candidates := []*scoring.Result{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
	}

	messages := generator.GenerateBatch(context.Background(), candidates, "job", 2)

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	if messages[0].CandidateName != "A" || messages[1].CandidateName != "B" {
		t.Fatalf("expected ranked order, got %s, %s", messages[0].CandidateName, messages[1].CandidateName)
	}

	if stub.calls != 2 {
		t.Fatalf("expected 2 writer calls, got %d", stub.calls)
	}
}

func TestGenerateBatchCapsAtCandidateCount(t *testing.T) {
	generator := NewGenerator(nil, Recruiter{}, zap.NewNop())

	messages := generator.GenerateBatch(context.Background(), []*scoring.Result{{Name: "A"}}, "job", 5)

	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
}

func TestCleanMessage(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "known prefix",
			in:   "Here's a personalized LinkedIn outreach message:\n\nHi Sarah,\n\nbody",
			want: "Hi Sarah,\n\nbody",
		},
		{
			name: "unknown narration before greeting",
			in:   "Here is what I came up with.\nSome notes first.\nHi John,\nbody",
			want: "Hi John,\nbody",
		},
		{
			name: "clean message untouched",
			in:   "Hi Maria,\n\nbody",
			want: "Hi Maria,\n\nbody",
		},
		{
			name: "dear greeting",
			in:   "This is the draft:\nDear Priya,\nbody",
			want: "Dear Priya,\nbody",
		},
		{
			name: "whitespace trimmed",
			in:   "  Hello James, welcome.  ",
			want: "Hello James, welcome.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanMessage(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
