package linkedin

import (
	"encoding/json"
	"os"
)

const (
	ProfileURLField     = "URL"
	ProfileCompanyField = "Company"
)

// Profile is a minimal public view of a LinkedIn candidate profile.
type Profile struct {
	Name     string `json:"name"`
	URL      string `json:"linkedin_url"`
	Headline string `json:"headline"`
	Company  string `json:"company"`
	Location string `json:"location"`
	// RawSnippet keeps whatever free text the search surfaced for the profile.
	RawSnippet string `json:"raw_snippet,omitempty"`
}

// Profiles is a mutable collection of candidate profiles.
type Profiles struct {
	Items []*Profile
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

func (p *Profiles) FindByURL(url string) *Profile {
	for _, profile := range p.Items {
		if profile.URL == url {
			return profile
		}
	}
	return nil
}

func (pr *Profile) GetStringField(name string) string {
	switch name {
	case ProfileURLField:
		return pr.URL
	case ProfileCompanyField:
		return pr.Company
	default:
		return ""
	}
}

// Exclude removes profiles whose named field matches any of the targets and
// returns the URLs of the removed profiles.
func (p *Profiles) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, profile := range p.Items {
			if profile.GetStringField(name) == target {
				p.RemoveByIndex(idx)
				excluded = append(excluded, profile.URL)
				break
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a profile from the list by index. Does not preserve order.
func (p *Profiles) RemoveByIndex(idx int) {
	p.Items[idx] = p.Items[len(p.Items)-1]
	p.Items = p.Items[:len(p.Items)-1]
}

// DumpToTmpFile writes the profiles as indented JSON into a temporary file and
// returns its name.
func (p *Profiles) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
