package domain

// Verdict is the canonical outcome of a judged execution. The backend
// speaks two vocabularies for it; both are translated into this type by
// the gateway.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictAccepted
	VerdictWrongAnswer
	VerdictTimeout
	VerdictRuntimeError
	VerdictCompileError
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictWrongAnswer:
		return "wrong_answer"
	case VerdictTimeout:
		return "timeout"
	case VerdictRuntimeError:
		return "runtime_error"
	case VerdictCompileError:
		return "compile_error"
	}
	return "unknown"
}

func (v Verdict) IsAccepted() bool {
	return v == VerdictAccepted
}

type TestStatus string

const (
	TestPass  TestStatus = "PASS"
	TestFail  TestStatus = "FAIL"
	TestError TestStatus = "ERROR"
)

// TestResult is one row of the per-test breakdown. Input, Expected and
// Actual hold compact JSON text as produced by the runner.
type TestResult struct {
	Status       TestStatus
	Input        string
	Expected     string
	Actual       *string
	ErrorMessage string
	RuntimeMs    *int
}

type Details struct {
	TestResults       []TestResult
	CompilationOutput string
	RuntimeOutput     string
	Error             string
}

// Outcome is the verdict and metric shape shared by runs and submissions.
type Outcome struct {
	Verdict   Verdict
	Passed    int
	Total     int
	RuntimeMs *int
	MemoryKb  *int
	Details   *Details
}
