package schema

// Custom string types for type safety.
type (
	// IssueKind classifies an integrity finding.
	IssueKind string

	// Severity grades an integrity finding.
	Severity string

	// IntegrityStatus is the overall verdict of an integrity scan.
	IntegrityStatus string

	// TrendDirection classifies the quality delta against the baseline.
	TrendDirection string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot storage.
	DatabaseBackend string
)

// All integrity issue kinds.
const (
	SecretIssue IssueKind = "secret"
	DebugIssue  IssueKind = "debug"
	BinaryIssue IssueKind = "binary"
	SizeIssue   IssueKind = "size"
)

// All severities supported.
const (
	WarningSeverity  Severity = "warning"
	CriticalSeverity Severity = "critical"
)

// All integrity statuses supported.
const (
	PassStatus IntegrityStatus = "pass"
	FailStatus IntegrityStatus = "fail"
)

// All trend directions supported.
const (
	ImprovingTrend TrendDirection = "improving"
	StableTrend    TrendDirection = "stable"
	DecliningTrend TrendDirection = "declining"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid snapshot store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
