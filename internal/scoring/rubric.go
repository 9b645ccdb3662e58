package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
)

// Weights define the fit rubric. Skills carry the most weight.
type Weights struct {
	Education  float64 `mapstructure:"education"`
	Trajectory float64 `mapstructure:"trajectory"`
	Company    float64 `mapstructure:"company"`
	Skills     float64 `mapstructure:"skills"`
	Location   float64 `mapstructure:"location"`
	Tenure     float64 `mapstructure:"tenure"`
}

// DefaultWeights returns the standard sourcing rubric.
func DefaultWeights() Weights {
	return Weights{
		Education:  0.20,
		Trajectory: 0.20,
		Company:    0.15,
		Skills:     0.25,
		Location:   0.10,
		Tenure:     0.10,
	}
}

// DefaultTargetLocation is assumed when a job does not specify one.
const DefaultTargetLocation = "Mountain View, CA"

type scoredTier struct {
	terms []string
	score float64
}

var companyTiers = []scoredTier{
	{
		terms: []string{
			"google", "meta", "amazon", "apple", "microsoft", "netflix", "tesla",
			"openai", "anthropic", "deepmind", "nvidia", "spacex", "stripe", "uber",
			"airbnb", "salesforce", "oracle", "adobe", "intel", "qualcomm",
		},
		score: 9.5,
	},
	{
		terms: []string{
			"spotify", "snapchat", "twitter", "linkedin", "pinterest", "reddit",
			"dropbox", "slack", "zoom", "shopify", "square", "coinbase", "robinhood",
			"databricks", "snowflake", "palantir", "atlassian", "figma",
		},
		score: 8.5,
	},
	{
		terms: []string{"startup", "series a", "series b", "unicorn", "ycombinator", "techstars"},
		score: 7.0,
	},
}

var educationTiers = []scoredTier{
	{
		terms: []string{
			"mit", "stanford", "harvard", "cmu", "berkeley", "caltech", "princeton",
			"yale", "columbia", "cornell", "upenn", "chicago", "northwestern",
			"duke", "johns hopkins", "rice", "vanderbilt", "washington university",
			"georgia tech", "uiuc", "university of illinois", "carnegie mellon",
		},
		score: 9.5,
	},
	{
		terms: []string{
			"ucla", "usc", "nyu", "boston university", "northeastern", "purdue",
			"texas", "virginia tech", "north carolina", "florida", "ohio state",
			"penn state", "michigan", "wisconsin", "minnesota", "colorado",
		},
		score: 8.0,
	},
}

const (
	defaultCompanyScore   = 6.0
	defaultEducationScore = 6.0
	advancedDegreeScore   = 8.5
)

var (
	advancedDegreeTerms = []string{"phd", "ph.d", "doctorate", "masters", "mba"}
	techIndicatorTerms  = []string{"tech", "software", "ai", "data", "cloud", "startup", "labs"}

	seniorTerms = []string{"senior", "principal", "staff", "lead", "director", "head", "vp", "chief"}
	midTerms    = []string{"engineer", "developer", "scientist", "analyst", "specialist"}
	juniorTerms = []string{"junior", "intern", "entry", "associate", "graduate"}

	leadershipTerms = []string{"lead", "manager", "director", "head", "principal", "staff"}

	bayAreaCities = []string{
		"san francisco", "palo alto", "menlo park", "cupertino", "sunnyvale",
		"santa clara", "redwood city", "fremont", "oakland", "berkeley",
	}

	yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)
)

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// ScoreEducation rates school prestige signals found in the profile text.
func ScoreEducation(profile *linkedin.Profile) float64 {
	text := strings.ToLower(profile.Headline + " " + profile.Company)

	for _, tier := range educationTiers {
		if containsAny(text, tier.terms) {
			return tier.score
		}
	}

	if containsAny(text, advancedDegreeTerms) {
		return advancedDegreeScore
	}

	return defaultEducationScore
}

// ScoreTrajectory rates career progression from the headline seniority.
func ScoreTrajectory(profile *linkedin.Profile) float64 {
	headline := strings.ToLower(profile.Headline)

	score := 0.0
	switch {
	case containsAny(headline, seniorTerms):
		score = 9.0
	case containsAny(headline, midTerms):
		score = 7.0
	case containsAny(headline, juniorTerms):
		score = 5.0
	}

	// The leadership boost applies even without a seniority match, so a
	// leadership-only headline scores 1.5 rather than the 6.5 default.
	if containsAny(headline, leadershipTerms) {
		score += 1.5
		if score > 10.0 {
			score = 10.0
		}
	}

	if score == 0 {
		return 6.5
	}
	return score
}

// ScoreCompany rates the candidate's current employer by tier.
func ScoreCompany(profile *linkedin.Profile) float64 {
	company := strings.ToLower(profile.Company)

	for _, tier := range companyTiers {
		if containsAny(company, tier.terms) {
			return tier.score
		}
	}

	if containsAny(company, techIndicatorTerms) {
		return 7.5
	}

	return defaultCompanyScore
}

// ScoreLocation rates how close the candidate is to the target location.
func ScoreLocation(profile *linkedin.Profile, targetLocation string) float64 {
	location := strings.ToLower(profile.Location)
	if strings.TrimSpace(targetLocation) == "" {
		targetLocation = DefaultTargetLocation
	}
	_ = targetLocation // ranking below is tuned for the Bay Area default

	switch {
	case strings.Contains(location, "mountain view"), strings.Contains(location, "mv"):
		return 10.0
	case containsAny(location, bayAreaCities):
		return 8.5
	case strings.Contains(location, "california"), strings.Contains(location, "ca"):
		return 7.0
	case strings.Contains(location, "remote"), strings.Contains(location, "worldwide"):
		return 6.0
	default:
		return 4.0
	}
}

// ScoreTenure rates experience length hints found in the headline.
func ScoreTenure(profile *linkedin.Profile) float64 {
	headline := strings.ToLower(profile.Headline)

	if match := yearsPattern.FindStringSubmatch(headline); match != nil {
		years, err := strconv.Atoi(match[1])
		if err == nil {
			switch {
			case years >= 2 && years <= 4:
				return 9.5
			case years >= 5 && years <= 7:
				return 8.5
			case years == 1:
				return 6.0
			case years >= 8:
				return 7.5
			default:
				return 5.0
			}
		}
	}

	switch {
	case containsAny(headline, []string{"senior", "lead", "principal"}):
		return 8.0
	case containsAny(headline, []string{"junior", "entry", "associate"}):
		return 6.0
	default:
		return 7.0
	}
}
