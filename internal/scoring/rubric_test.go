package scoring

import (
	"testing"

	"github.com/synapse-ai/sourcing-agent/internal/linkedin"
)

func TestScoreEducation(t *testing.T) {
	cases := []struct {
		name     string
		headline string
		company  string
		want     float64
	}{
		{name: "elite school", headline: "MIT graduate, ML Engineer", want: 9.5},
		{name: "strong school", headline: "UCLA grad working on infra", want: 8.0},
		{name: "advanced degree", headline: "PhD in Robotics", want: 8.5},
		{name: "no signal", headline: "Engineer", company: "Initech", want: 6.0},
		{name: "company carries the signal", headline: "Engineer", company: "Stanford Research Lab", want: 9.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &linkedin.Profile{Headline: tc.headline, Company: tc.company}
			if got := ScoreEducation(profile); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScoreTrajectory(t *testing.T) {
	cases := []struct {
		name     string
		headline string
		want     float64
	}{
		{name: "senior", headline: "Senior ML Engineer", want: 9.0},
		{name: "mid", headline: "Software Developer", want: 7.0},
		{name: "junior", headline: "Intern", want: 5.0},
		{name: "mid with leadership bonus", headline: "Engineering Manager", want: 8.5},
		{name: "senior with leadership capped", headline: "Staff Engineer", want: 10.0},
		{name: "leadership without seniority level", headline: "Product Manager at Initech", want: 1.5},
		{name: "no signal", headline: "Consultant", want: 6.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &linkedin.Profile{Headline: tc.headline}
			if got := ScoreTrajectory(profile); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScoreCompany(t *testing.T) {
	cases := []struct {
		name    string
		company string
		want    float64
	}{
		{name: "top tier", company: "Google DeepMind", want: 9.5},
		{name: "second tier", company: "Databricks", want: 8.5},
		{name: "startup tier", company: "Acme Startup", want: 7.0},
		{name: "tech indicator", company: "Quantum Labs", want: 7.5},
		{name: "unknown", company: "Joe's Bakery", want: 6.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &linkedin.Profile{Company: tc.company}
			if got := ScoreCompany(profile); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScoreLocation(t *testing.T) {
	cases := []struct {
		name     string
		location string
		want     float64
	}{
		{name: "target city", location: "Mountain View, CA", want: 10.0},
		{name: "bay area", location: "San Francisco, CA", want: 8.5},
		{name: "elsewhere in california", location: "San Diego, California", want: 7.0},
		{name: "remote", location: "Remote", want: 6.0},
		{name: "far away", location: "Austin, TX", want: 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &linkedin.Profile{Location: tc.location}
			if got := ScoreLocation(profile, ""); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScoreTenure(t *testing.T) {
	cases := []struct {
		name     string
		headline string
		want     float64
	}{
		{name: "sweet spot", headline: "3+ yrs building backends", want: 9.5},
		{name: "experienced", headline: "5 years experience in ML", want: 8.5},
		{name: "one year", headline: "1 year of professional work", want: 6.0},
		{name: "very long tenure", headline: "12 years in big tech", want: 7.5},
		{name: "zero years", headline: "0 years experience", want: 5.0},
		{name: "no years but senior", headline: "Principal Architect", want: 8.0},
		{name: "no years but junior", headline: "Entry level developer", want: 6.0},
		{name: "no signal at all", headline: "Technologist", want: 7.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &linkedin.Profile{Headline: tc.headline}
			if got := ScoreTenure(profile); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
