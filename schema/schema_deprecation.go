package schema

// DeprecationWarning records one deprecated-API usage found on a source line.
// A line yields at most one warning: the first pattern in table order wins.
type DeprecationWarning struct {
	File     string `json:"file"`     // Relative path to the file
	Line     int    `json:"line"`     // 1-based line number
	Pattern  string `json:"pattern"`  // Excerpt of the regex that fired (capped for display)
	Message  string `json:"message"`  // Human guidance for the deprecated API
	Language string `json:"language"` // Language label, e.g. "Python", "Go", "General"
}
