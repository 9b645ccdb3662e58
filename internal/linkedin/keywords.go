package linkedin

import "strings"

// Keyword vocabularies used to target search queries. Matching is plain
// substring membership over the lowercased job description.
var (
	techSkillTerms = []string{
		"python", "javascript", "react", "node.js", "aws", "docker",
		"kubernetes", "machine learning", "ml", "ai", "tensorflow",
		"pytorch", "llm", "neural networks", "backend", "frontend",
		"fullstack", "devops", "cloud", "microservices",
	}

	companyTerms = []string{
		"google", "microsoft", "amazon", "meta", "netflix", "uber",
		"airbnb", "stripe", "openai", "anthropic", "startup", "fintech",
	}

	roleTerms = []string{
		"engineer", "developer", "architect", "lead", "senior",
		"principal", "staff", "manager", "director",
	}
)

// JobKeywords groups the terms recognized in a job description.
type JobKeywords struct {
	Skills    []string
	Companies []string
	Roles     []string
}

// ExtractJobKeywords pulls recognized skill, company and role terms out of the
// job description, capped to keep search queries focused.
func ExtractJobKeywords(jobDescription string) JobKeywords {
	text := strings.ToLower(jobDescription)

	return JobKeywords{
		Skills:    matchTerms(text, techSkillTerms, 3),
		Companies: matchTerms(text, companyTerms, 3),
		Roles:     matchTerms(text, roleTerms, 2),
	}
}

func matchTerms(text string, terms []string, limit int) []string {
	found := make([]string, 0, limit)
	for _, term := range terms {
		if strings.Contains(text, term) {
			found = append(found, term)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

// BuildSearchQueries produces Google queries targeting public LinkedIn
// profiles for the job description. At most two queries are returned to stay
// under search rate limits. The live search path does not execute them; they
// exist for the non-mock mode.
func BuildSearchQueries(jobDescription string) []string {
	keywords := ExtractJobKeywords(jobDescription)

	const base = "site:linkedin.com/in"
	queries := make([]string, 0, 2)

	if len(keywords.Skills) > 0 {
		query := base + ` "` + keywords.Skills[0] + `"`
		if len(keywords.Skills) > 1 {
			query += ` "` + keywords.Skills[1] + `"`
		}
		queries = append(queries, query)
	}

	if len(keywords.Companies) > 0 && len(keywords.Roles) > 0 {
		queries = append(queries, base+` "`+keywords.Companies[0]+`" "`+keywords.Roles[0]+`"`)
	}

	if len(keywords.Roles) > 0 {
		query := base + ` "` + keywords.Roles[0] + `"`
		for _, role := range keywords.Roles {
			if role == "engineer" {
				query += ` "software engineer"`
				break
			}
		}
		queries = append(queries, query)
	}

	if len(queries) == 0 {
		queries = append(queries, base+` "software engineer"`)
	}

	if len(queries) > 2 {
		queries = queries[:2]
	}

	return queries
}
