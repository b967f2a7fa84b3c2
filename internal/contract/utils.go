package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/codegauge/codegauge/schema"
	"github.com/fatih/color"
)

// Quality label constants.
const (
	GoodValue     = "Good"
	FairValue     = "Fair"
	PoorValue     = "Poor"
	CriticalValue = "Critical"
)

// Color variables for console output.
var (
	goodColor     = color.New(color.FgGreen)
	fairColor     = color.New(color.FgCyan)
	poorColor     = color.New(color.FgYellow)
	criticalColor = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow)
)

// GetPlainQualityLabel returns a plain text label for a composite quality
// score. This is the core logic used for CSV, JSON, and table printing.
func GetPlainQualityLabel(score float64) string {
	switch {
	case score >= 80:
		return GoodValue
	case score >= 60:
		return FairValue
	case score >= 40:
		return PoorValue
	default:
		return CriticalValue
	}
}

// GetColorQualityLabel returns a colored quality label for console output.
func GetColorQualityLabel(score float64) string {
	text := GetPlainQualityLabel(score)

	switch text {
	case GoodValue:
		return goodColor.Sprint(text)
	case FairValue:
		return fairColor.Sprint(text)
	case PoorValue:
		return poorColor.Sprint(text)
	default: // "Critical"
		return criticalColor.Sprint(text)
	}
}

// GetColorSeverityLabel returns a colored severity label for console output.
func GetColorSeverityLabel(sev schema.Severity) string {
	if sev == schema.CriticalSeverity {
		return criticalColor.Sprint(string(sev))
	}
	return warningColor.Sprint(string(sev))
}

// GetColorDirectionLabel returns a colored trend direction for console output.
func GetColorDirectionLabel(dir schema.TrendDirection) string {
	switch dir {
	case schema.ImprovingTrend:
		return goodColor.Sprint(string(dir))
	case schema.DecliningTrend:
		return criticalColor.Sprint(string(dir))
	default:
		return fairColor.Sprint(string(dir))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is space for "..." plus at least one
// character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
