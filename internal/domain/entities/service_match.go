package entities

// ServiceCandidate is one service the AI matcher may pick.
type ServiceCandidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
