// Package faq holds the fixed catalog of onboarding questions the FAQ
// endpoint answers. The catalog is shared by the client form and the
// backend handler so both sides agree on what a valid selection is.
package faq

// Questions returns the predefined onboarding questions, in the order
// they are presented to the user.
func Questions() []string {
	return []string{
		"What are the company holidays?",
		"How much PTO do we have?",
		"What is our developer salary?",
		"What career path options are there?",
	}
}

// Valid reports whether q is one of the catalog questions.
func Valid(q string) bool {
	for _, known := range Questions() {
		if q == known {
			return true
		}
	}
	return false
}
