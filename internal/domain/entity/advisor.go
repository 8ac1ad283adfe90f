package entity

// Advisor describes one of the six fixed chat models a node can be bound to.
type Advisor struct {
	ID          string // Catalog ID, "1" through "6".
	Model       string // Upstream model identifier sent to the completion API.
	Name        string // Human-readable advisor role.
	Description string // What this advisor is good at.
}

// advisors is the fixed catalog. The IDs are stable and referenced by
// Node.ModelID; the orchestrator ("1") also produces workspace summaries.
var advisors = []Advisor{
	{
		ID:          "1",
		Model:       "meta-llama/llama-4-maverick-17b-128e-instruct",
		Name:        "Orchestrator (Chief of Staff)",
		Description: "Synthesizes all perspectives, surfaces contradictions, reframes the decision",
	},
	{
		ID:          "2",
		Model:       "moonshotai/kimi-k2-instruct",
		Name:        "Market Compass",
		Description: "Analyzes market signals, trends, and competition",
	},
	{
		ID:          "3",
		Model:       "openai/gpt-oss-20b",
		Name:        "Financial Guardian",
		Description: "Simulates cash flow, stress-tests finances, logic and calculation",
	},
	{
		ID:          "4",
		Model:       "meta-llama/llama-4-scout-17b-16e-instruct",
		Name:        "Strategy Analyst",
		Description: "Logical frameworks, blind spots, assumption testing",
	},
	{
		ID:          "5",
		Model:       "llama-3.3-70b-versatile",
		Name:        "People Advisor",
		Description: "Organizational psychology, human reactions, appropriate tone",
	},
	{
		ID:          "6",
		Model:       "llama-3.1-8b-instant",
		Name:        "Action Architect",
		Description: "Execution, timelines, resources, risk realism",
	},
}

// Advisors returns the catalog in display order.
func Advisors() []Advisor {
	out := make([]Advisor, len(advisors))
	copy(out, advisors)

	return out
}

// AdvisorByID looks up a catalog entry by its ID.
func AdvisorByID(id string) (Advisor, bool) {
	for _, a := range advisors {
		if a.ID == id {
			return a, true
		}
	}

	return Advisor{}, false
}

// ValidAdvisorID reports whether id names a catalog entry.
func ValidAdvisorID(id string) bool {
	_, ok := AdvisorByID(id)

	return ok
}

// OrchestratorAdvisor returns the catalog entry used for workspace summaries.
func OrchestratorAdvisor() Advisor {
	return advisors[0]
}
