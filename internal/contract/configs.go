package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/codegauge/codegauge/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultBranch    = "main"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for one analysis run.
// This struct remains the "final, validated" config.
type Config struct {
	RootPath string // Absolute path to the materialized source tree
	RepoName string // Logical repository name used for snapshot lookups
	Branch   string // Branch name used for snapshot lookups

	DiffFile string // Optional unified diff to count ("" = none, "-" = stdin)

	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Detail     bool // If true, print per-file metric rows
	Width      int  // Terminal width override (0 = auto-detect)
	UseEmojis  bool // Enable emojis in output headers
	UseColors  bool // Enable colored labels in table output

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// Policy carries all scan tunables. Components read thresholds from
	// here, never from package-level constants.
	Policy *schema.ScanPolicy
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	Repo           string `mapstructure:"repo"`
	Branch         string `mapstructure:"branch"`
	DiffFile       string `mapstructure:"diff-file"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Detail         bool   `mapstructure:"detail"`
	Width          int    `mapstructure:"width"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Exclude        string `mapstructure:"exclude"`
	MaxFileSizeMB  int    `mapstructure:"max-file-size-mb"`
	WarningLimit   int    `mapstructure:"warning-limit"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Policy != nil {
		clone.Policy = c.Policy.Clone()
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processPolicy(cfg, input); err != nil {
		return err
	}
	return resolveRootPath(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// URL form")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoName = input.Repo
	cfg.Branch = input.Branch
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	cfg.DiffFile = input.DiffFile
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// processPolicy builds the scan policy from defaults plus user overrides.
func processPolicy(cfg *Config, input *ConfigRawInput) error {
	policy := schema.DefaultScanPolicy()

	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				policy.IgnoredDirs[trimmed] = struct{}{}
			}
		}
	}

	if input.MaxFileSizeMB < 0 {
		return fmt.Errorf("max-file-size-mb cannot be negative (received %d)", input.MaxFileSizeMB)
	}
	if input.MaxFileSizeMB > 0 {
		policy.MaxFileSizeBytes = int64(input.MaxFileSizeMB) * 1024 * 1024
	}

	if input.WarningLimit < 0 {
		return fmt.Errorf("warning-limit cannot be negative (received %d)", input.WarningLimit)
	}
	if input.WarningLimit > 0 {
		policy.WarningRenderCap = input.WarningLimit
	}

	cfg.Policy = policy
	return nil
}

// resolveRootPath validates the scan root and derives the repo name when the
// user did not provide one. A missing root is the caller's error, reported
// here before any stage runs.
func resolveRootPath(cfg *Config, input *ConfigRawInput) error {
	root := input.RootPathStr
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("cannot resolve path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", abs)
	}
	cfg.RootPath = abs

	if cfg.RepoName == "" {
		cfg.RepoName = filepath.Base(abs)
	}
	return nil
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".codegauge_snapshots.db"
	}
	return filepath.Join(homeDir, ".codegauge_snapshots.db")
}
