package category

import "strings"

type Category struct {
	Name     string
	Keywords []string
}

var categories = []Category{
	{Name: "Business Development", Keywords: []string{"business", "sales", "account manager"}},
	{Name: "Construction", Keywords: []string{"construction", "civil", "architect"}},
	{Name: "Customer Service", Keywords: []string{"customer", "support", "service"}},
	{Name: "Finance", Keywords: []string{"finance", "financial", "analyst", "accountant"}},
	{Name: "Healthcare", Keywords: []string{"health", "medical", "doctor", "nurse", "healthcare"}},
	{Name: "Human Resources", Keywords: []string{"hr", "human resources", "recruiter"}},
}

// List returns the categories in display order.
func List() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)
	return result
}

// Find looks a category up by its exact name.
func Find(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// MatchesJob is the single predicate used for counting, search and alerts.
// Keywords are expected in lower case.
func MatchesJob(keywords []string, title, description string) bool {
	titleLower := strings.ToLower(title)
	descriptionLower := strings.ToLower(description)
	for _, keyword := range keywords {
		if strings.Contains(titleLower, keyword) || strings.Contains(descriptionLower, keyword) {
			return true
		}
	}
	return false
}

// MatchesByName is MatchesJob for a named category; unknown names never match.
func MatchesByName(name, title, description string) bool {
	c, ok := Find(name)
	if !ok {
		return false
	}
	return MatchesJob(c.Keywords, title, description)
}
