package cvhandler

import (
	"strings"

	"job-portal-backend/lib/utils/helpers"
	dbmodels "job-portal-backend/models/db"
)

// FilterCandidates keeps CVs whose name, title or any skill contains term.
func FilterCandidates(list []dbmodels.Cv, term string) []dbmodels.Cv {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}
	result := []dbmodels.Cv{}
	for _, rec := range list {
		if candidateMatches(rec, term) {
			result = append(result, rec)
		}
	}
	return result
}

func candidateMatches(rec dbmodels.Cv, term string) bool {
	if helpers.ContainsFold(rec.Name, term) || helpers.ContainsFold(rec.Title, term) {
		return true
	}
	for _, skill := range rec.Skills {
		if helpers.ContainsFold(skill, term) {
			return true
		}
	}
	return false
}
