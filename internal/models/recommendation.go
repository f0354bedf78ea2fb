package models

// Recommendation is a decorative text card fetched from a public placeholder
// endpoint. Purely cosmetic; the dashboard renders whatever comes back.
type Recommendation struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
