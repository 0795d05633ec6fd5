// Package present maps session state to human-readable text for the
// terminal client.
package present

import (
	"fmt"

	"github.com/leetcoach/client/domain"
)

func VerdictLabel(v domain.Verdict) string {
	switch v {
	case domain.VerdictAccepted:
		return "Accepted"
	case domain.VerdictWrongAnswer:
		return "Wrong Answer"
	case domain.VerdictTimeout:
		return "Time Limit Exceeded"
	case domain.VerdictRuntimeError:
		return "Runtime Error"
	case domain.VerdictCompileError:
		return "Compilation Error"
	}
	return "Unknown"
}

func LanguageLabel(l domain.Language) string {
	switch l {
	case domain.LangPython:
		return "Python"
	case domain.LangCpp:
		return "C++"
	}
	return string(l)
}

func PassedLabel(o domain.Outcome) string {
	return fmt.Sprintf("%d / %d", o.Passed, o.Total)
}

func RuntimeLabel(ms *int) string {
	if ms == nil || *ms == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dms", *ms)
}

func MemoryLabel(kb *int) string {
	if kb == nil || *kb == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dKB", *kb)
}
