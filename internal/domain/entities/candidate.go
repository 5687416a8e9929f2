package entities

// CompanyCandidate is an organization suggestion returned by the external
// AI web search. Display-only; never persisted as source-of-truth data.
type CompanyCandidate struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}
