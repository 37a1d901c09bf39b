package domain

// Process exit codes. Each terminal condition of a lint run maps to a
// distinct code so CI systems can tell policy failures from tool failures.
const (
	ExitSuccess                   = 0
	ExitRuleNotFound              = 1
	ExitReporterNotFound          = 2
	ExitErrorWhileProcessing      = 3
	ExitErrorWhileReporting       = 4
	ExitViolationsExceedThreshold = 5
	ExitCompilationErrors         = 6
)

// ExitCodeName returns a stable name for an exit code, used in diagnostics
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "success"
	case ExitRuleNotFound:
		return "rule not found"
	case ExitReporterNotFound:
		return "reporter not found"
	case ExitErrorWhileProcessing:
		return "error while processing"
	case ExitErrorWhileReporting:
		return "error while reporting"
	case ExitViolationsExceedThreshold:
		return "violations exceed threshold"
	case ExitCompilationErrors:
		return "compilation errors"
	default:
		return "unknown"
	}
}
