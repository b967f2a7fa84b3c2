package schema

// IntegrityIssue describes one finding from the integrity scan.
// Issues are append-only within a scan and immutable afterwards.
type IntegrityIssue struct {
	File     string    `json:"file"`     // Relative path to the offending file
	Kind     IssueKind `json:"kind"`     // secret | debug | binary | size
	Detail   string    `json:"detail"`   // Human-readable description of the finding
	Severity Severity  `json:"severity"` // warning | critical
}

// IntegrityResult is the outcome of scanning a whole tree.
type IntegrityResult struct {
	Status       IntegrityStatus  `json:"status"`       // pass | fail
	ContentHash  string           `json:"content_hash"` // Deterministic hex digest of the tree
	Issues       []IntegrityIssue `json:"issues"`
	FilesScanned int              `json:"files_scanned"`
}

// HasCritical reports whether any issue carries critical severity.
// Status is fail if and only if this returns true.
func (r *IntegrityResult) HasCritical() bool {
	for _, issue := range r.Issues {
		if issue.Severity == CriticalSeverity {
			return true
		}
	}
	return false
}
