package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
	"github.com/synapse-ai/sourcing-agent/internal/scoring"
)

type duplicatesFilter struct{}

// NewDuplicates creates a filter that removes repeated profiles by URL.
func NewDuplicates() Filter {
	return &duplicatesFilter{}
}

func (f *duplicatesFilter) Name() string { return "duplicates" }

func (f *duplicatesFilter) Disable(string) {}

func (f *duplicatesFilter) IsEnabled() bool { return true }

func (f *duplicatesFilter) Validate(*Config) error { return nil }

func (f *duplicatesFilter) Apply(_ context.Context, deps Deps, p *linkedin.Profiles) (*linkedin.Profiles, Step, error) {
	initial := p.Len()

	seen := make(map[string]bool, initial)
	kept := make([]*linkedin.Profile, 0, initial)
	var dropped []string
	for _, profile := range p.Items {
		if seen[profile.URL] {
			dropped = append(dropped, profile.URL)
			continue
		}
		seen[profile.URL] = true
		kept = append(kept, profile)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("removed duplicate profiles",
			zap.Strings("dropped_profiles", dropped),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (f *duplicatesFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

type excludedCompaniesFilter struct {
	companies []string
}

// NewExcludedCompanies creates a filter that removes candidates employed at
// companies listed in the config.
func NewExcludedCompanies() Filter {
	return &excludedCompaniesFilter{}
}

func (f *excludedCompaniesFilter) Name() string { return "excluded_companies" }

func (f *excludedCompaniesFilter) Disable(string) {}

func (f *excludedCompaniesFilter) IsEnabled() bool { return true }

func (f *excludedCompaniesFilter) Validate(cfg *Config) error {
	f.companies = nil
	if cfg != nil {
		f.companies = append(f.companies, cfg.ExcludedCompanies...)
	}
	return nil
}

func (f *excludedCompaniesFilter) Apply(_ context.Context, deps Deps, p *linkedin.Profiles) (*linkedin.Profiles, Step, error) {
	initial := p.Len()
	if len(f.companies) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	kept := make([]*linkedin.Profile, 0, initial)
	var dropped []string
	for _, profile := range p.Items {
		if matchesCompany(profile.Company, f.companies) {
			dropped = append(dropped, profile.URL)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates by company",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("dropped_profiles", dropped),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (f *excludedCompaniesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

func matchesCompany(company string, excluded []string) bool {
	company = strings.ToLower(strings.TrimSpace(company))
	for _, name := range excluded {
		if name = strings.ToLower(strings.TrimSpace(name)); name == "" {
			continue
		}
		if company == name {
			return true
		}
	}
	return false
}

// locationMinScore is the location rubric score a candidate must reach when a
// location preference is requested.
const locationMinScore = 7.0

type locationPreferenceFilter struct {
	disabled   bool
	reason     string
	preference string
}

// NewLocationPreference creates a filter that drops candidates far from the
// requested location.
func NewLocationPreference() Filter {
	return &locationPreferenceFilter{}
}

func (f *locationPreferenceFilter) Name() string { return "location_preference" }

func (f *locationPreferenceFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *locationPreferenceFilter) IsEnabled() bool { return !f.disabled }

func (f *locationPreferenceFilter) Validate(cfg *Config) error {
	f.preference = ""
	if cfg != nil {
		f.preference = strings.TrimSpace(cfg.LocationPreference)
	}
	if strings.EqualFold(f.preference, "any") {
		f.preference = ""
	}
	return nil
}

func (f *locationPreferenceFilter) Apply(_ context.Context, deps Deps, p *linkedin.Profiles) (*linkedin.Profiles, Step, error) {
	initial := p.Len()
	if f.preference == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	kept := make([]*linkedin.Profile, 0, initial)
	var dropped []string
	for _, profile := range p.Items {
		if scoring.ScoreLocation(profile, f.preference) < locationMinScore {
			dropped = append(dropped, profile.URL)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates by location preference",
			zap.String("preference", f.preference),
			zap.Strings("dropped_profiles", dropped),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (f *locationPreferenceFilter) Status() Status {
	details := map[string]string{}
	if f.preference != "" {
		details["preference"] = f.preference
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
