package sourcing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/filtering"
	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
	"github.com/synapse-ai/sourcing-agent/internal/outreach"
	"github.com/synapse-ai/sourcing-agent/internal/scoring"
)

const (
	defaultMaxCandidates = 10
	// outreachTopN caps how many candidates get a generated message.
	outreachTopN = 5
)

var ErrEmptyJobDescription = errors.New("job description must not be empty")

// Request describes a sourcing run.
type Request struct {
	JobDescription     string `json:"job_description"`
	MaxCandidates      int    `json:"max_candidates"`
	LocationPreference string `json:"location_preference"`
}

// Candidate is a scored candidate enriched with an outreach message.
type Candidate struct {
	Name                    string                `json:"name"`
	URL                     string                `json:"linkedin_url"`
	Headline                string                `json:"headline"`
	Company                 string                `json:"company"`
	Location                string                `json:"location"`
	FitScore                float64               `json:"fit_score"`
	Breakdown               scoring.Breakdown     `json:"score_breakdown"`
	Skills                  scoring.SkillsSummary `json:"skills_analysis"`
	OutreachMessage         string                `json:"outreach_message"`
	PersonalizationElements []string              `json:"personalization_elements"`
}

// Result is the full outcome of a sourcing run.
type Result struct {
	JobID                 string             `json:"job_id"`
	CandidatesFound       int                `json:"candidates_found"`
	TopCandidates         []*Candidate       `json:"top_candidates"`
	ProcessingTimeSeconds float64            `json:"processing_time_seconds"`
	Timestamp             string             `json:"timestamp"`
	RecruiterInfo         outreach.Recruiter `json:"recruiter_info"`
}

// Agent coordinates the sourcing pipeline: search, filter, score, rank and
// outreach generation.
type Agent struct {
	searcher  *linkedin.Searcher
	scorer    *scoring.Scorer
	generator *outreach.Generator
	filterCfg filtering.Config
	logger    *zap.Logger
}

func New(searcher *linkedin.Searcher, scorer *scoring.Scorer, generator *outreach.Generator, filterCfg filtering.Config, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Agent{
		searcher:  searcher,
		scorer:    scorer,
		generator: generator,
		filterCfg: filterCfg,
		logger:    logger,
	}
}

// ProcessJob runs the complete pipeline for a single job description.
func (a *Agent) ProcessJob(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if req.JobDescription == "" {
		return nil, ErrEmptyJobDescription
	}

	maxCandidates := req.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxCandidates
	}

	profiles, err := a.searcher.Search(ctx, req.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("candidate search: %w", err)
	}
	found := profiles.Len()
	if found == 0 {
		return nil, errors.New("no candidates found")
	}

	filterCfg := a.filterCfg
	if req.LocationPreference != "" {
		filterCfg.LocationPreference = req.LocationPreference
	}

	profiles, err = filtering.Run(ctx, &filterCfg, filtering.Deps{Logger: a.logger}, filtering.DefaultSteps(), profiles)
	if err != nil {
		return nil, fmt.Errorf("filtering candidates: %w", err)
	}
	if profiles.Len() == 0 {
		return nil, errors.New("no candidates left after filters")
	}

	a.logger.Info("scoring candidates", zap.Int("count", profiles.Len()))
	scored := a.scorer.ScoreBatch(ctx, profiles, req.JobDescription)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}

	a.logger.Info("generating outreach messages")
	messages := a.generator.GenerateBatch(ctx, scored, req.JobDescription, outreachTopN)

	byName := make(map[string]*outreach.Message, len(messages))
	for _, msg := range messages {
		byName[msg.CandidateName] = msg
	}

	candidates := make([]*Candidate, 0, len(scored))
	for _, result := range scored {
		candidate := &Candidate{
			Name:      result.Name,
			URL:       result.URL,
			Headline:  displayHeadline(result),
			Company:   result.Company,
			Location:  result.Location,
			FitScore:  result.TotalScore,
			Breakdown: result.Breakdown,
			Skills:    result.Skills,
		}

		if msg, ok := byName[result.Name]; ok {
			candidate.OutreachMessage = msg.Text
			candidate.PersonalizationElements = msg.PersonalizationElements
		}

		candidates = append(candidates, candidate)
	}

	elapsed := time.Since(start)

	return &Result{
		JobID:                 fmt.Sprintf("job_%s", uuid.NewString()),
		CandidatesFound:       found,
		TopCandidates:         candidates,
		ProcessingTimeSeconds: math.Round(elapsed.Seconds()*100) / 100,
		Timestamp:             start.UTC().Format(time.RFC3339),
		RecruiterInfo:         a.generator.Recruiter(),
	}, nil
}

// displayHeadline prefers the AI reasoning over the raw headline, matching
// what recruiters want to read in the report.
func displayHeadline(result *scoring.Result) string {
	if result.Skills.Reasoning != "" {
		return result.Skills.Reasoning
	}
	return result.Headline
}
