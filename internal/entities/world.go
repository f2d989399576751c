package entities

// Location is a static node in the world graph. Loaded once at process
// start and never mutated.
type Location struct {
	ID          string
	Name        string
	Description string
	// AvailableActions is the ordered action vocabulary offered at this
	// location. Order is significant for presentation.
	AvailableActions []string
	// ExamineText maps non-movement action tokens to narrative text.
	ExamineText map[string]string
}
