package domain

// ClassifyQCode returns the category description and severity for a Q-code.
// An unknown code is its own category and ranks as info.
func ClassifyQCode(code string) (string, Severity) {
	category, ok := qCodeCategories[code]
	if !ok {
		category = code
	}
	return category, qCodeSeverity(code)
}

// qCodeSeverity matches critical codes exactly and warning codes on their
// first four characters.
func qCodeSeverity(code string) Severity {
	if criticalQCodes[code] {
		return SeverityCritical
	}
	if len(code) >= 4 {
		for _, w := range warningQCodes {
			if code[:4] == w[:4] {
				return SeverityWarning
			}
		}
	}
	return SeverityInfo
}
