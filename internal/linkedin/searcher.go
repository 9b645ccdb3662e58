package linkedin

import (
	"context"

	"go.uber.org/zap"
)

const defaultMaxResults = 25

// Searcher finds candidate profiles for a job description. Real LinkedIn
// scraping is deliberately not wired in; the curated catalog below stands in
// for search results so the rest of the pipeline stays exercisable without
// hammering search engines.
type Searcher struct {
	logger     *zap.Logger
	maxResults int
}

func NewSearcher(logger *zap.Logger, maxResults int) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &Searcher{logger: logger, maxResults: maxResults}
}

// Search returns candidate profiles for the given job description.
func (s *Searcher) Search(ctx context.Context, jobDescription string) (*Profiles, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("starting candidate search")

	queries := BuildSearchQueries(jobDescription)
	s.logger.Debug("built search queries", zap.Strings("queries", queries))

	profiles := mockCatalog()
	if profiles.Len() > s.maxResults {
		profiles.Items = profiles.Items[:s.maxResults]
	}

	s.logger.Info("found potential candidates", zap.Int("count", profiles.Len()))
	return profiles, nil
}

// mockCatalog is the fixed result set standing in for live search.
func mockCatalog() *Profiles {
	return &Profiles{
		Items: []*Profile{
			{
				Name:       "Sarah Chen",
				URL:        "https://linkedin.com/in/sarah-chen-ml",
				Headline:   "Senior ML Engineer at OpenAI",
				Company:    "OpenAI",
				Location:   "San Francisco, CA",
				RawSnippet: "ML Engineer with 5 years experience in LLMs and neural networks",
			},
			{
				Name:       "Alex Kumar",
				URL:        "https://linkedin.com/in/alex-kumar-ai",
				Headline:   "AI Research Scientist at Google DeepMind",
				Company:    "Google DeepMind",
				Location:   "Mountain View, CA",
				RawSnippet: "PhD in CS from Stanford, specialized in transformer architectures",
			},
			{
				Name:       "Maria Rodriguez",
				URL:        "https://linkedin.com/in/maria-rodriguez-dev",
				Headline:   "Full Stack Engineer at Meta",
				Company:    "Meta",
				Location:   "Menlo Park, CA",
				RawSnippet: "Software engineer with ML background, 3 years at FAANG companies",
			},
			{
				Name:       "James Wu",
				URL:        "https://linkedin.com/in/james-wu-engineer",
				Headline:   "Backend Engineer at Stripe",
				Company:    "Stripe",
				Location:   "San Francisco, CA",
				RawSnippet: "MIT graduate, expert in distributed systems and Python",
			},
			{
				Name:       "Priya Patel",
				URL:        "https://linkedin.com/in/priya-patel-ml",
				Headline:   "Machine Learning Engineer at Anthropic",
				Company:    "Anthropic",
				Location:   "San Francisco, CA",
				RawSnippet: "Carnegie Mellon CS grad, 4 years in production ML systems",
			},
		},
	}
}
