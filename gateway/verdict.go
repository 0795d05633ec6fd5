package gateway

import (
	"strings"

	"github.com/leetcoach/client/domain"
)

// The judge reports verdicts in a long form on submissions and, depending
// on the runner, in a short form on runs. Both map onto domain.Verdict
// here and nowhere else.

var longVerdicts = map[string]domain.Verdict{
	"ACCEPTED":            domain.VerdictAccepted,
	"WRONG_ANSWER":        domain.VerdictWrongAnswer,
	"TIMEOUT":             domain.VerdictTimeout,
	"TIME_LIMIT_EXCEEDED": domain.VerdictTimeout,
	"RUNTIME_ERROR":       domain.VerdictRuntimeError,
	"COMPILE_ERROR":       domain.VerdictCompileError,
	"COMPILATION_ERROR":   domain.VerdictCompileError,
}

var shortVerdicts = map[string]domain.Verdict{
	"AC":  domain.VerdictAccepted,
	"WA":  domain.VerdictWrongAnswer,
	"TLE": domain.VerdictTimeout,
	"RE":  domain.VerdictRuntimeError,
	"CE":  domain.VerdictCompileError,
}

func decodeLongVerdict(s string) (domain.Verdict, bool) {
	v, ok := longVerdicts[s]
	return v, ok
}

func decodeShortVerdict(s string) (domain.Verdict, bool) {
	v, ok := shortVerdicts[s]
	return v, ok
}

// DecodeVerdict accepts either vocabulary, case-insensitively. Anything
// else is domain.VerdictUnknown.
func DecodeVerdict(s string) domain.Verdict {
	s = strings.ToUpper(strings.TrimSpace(s))
	if v, ok := decodeLongVerdict(s); ok {
		return v
	}
	if v, ok := decodeShortVerdict(s); ok {
		return v
	}
	return domain.VerdictUnknown
}

// EncodeVerdict renders v in the long vocabulary, which is what the
// backend persists.
func EncodeVerdict(v domain.Verdict) string {
	switch v {
	case domain.VerdictAccepted:
		return "ACCEPTED"
	case domain.VerdictWrongAnswer:
		return "WRONG_ANSWER"
	case domain.VerdictTimeout:
		return "TIMEOUT"
	case domain.VerdictRuntimeError:
		return "RUNTIME_ERROR"
	case domain.VerdictCompileError:
		return "COMPILE_ERROR"
	}
	return "UNKNOWN"
}
