package intake

// Vocabulary is the pattern table the readiness check runs against. It is
// data, not control flow: extending the practice-area list changes what
// matches without touching the classifier.
type Vocabulary struct {
	// LegalTerms are practice-area terms, matched as whole words.
	LegalTerms []string

	// LocationWords are literal words that signal a place was mentioned,
	// matched as whole words.
	LocationWords []string
}

// DefaultVocabulary returns the built-in table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		LegalTerms: []string{
			"divorce", "custody", "child support", "alimony", "adoption",
			"criminal", "dui", "dwi", "assault", "theft", "fraud", "expungement",
			"personal injury", "car accident", "slip and fall", "malpractice",
			"immigration", "visa", "green card", "deportation", "asylum",
			"bankruptcy", "foreclosure", "debt collection",
			"estate planning", "probate", "wills", "trusts", "power of attorney",
			"employment", "discrimination", "harassment", "wrongful termination",
			"landlord", "tenant", "eviction", "lease",
			"contract", "business dispute", "real estate",
			"workers compensation", "workers comp",
			"workers' compensation", "workers' comp",
			"disability", "social security",
			"traffic ticket", "speeding",
		},
		LocationWords: []string{
			"city", "state", "located", "live", "town", "county", "area", "zip",
		},
	}
}
