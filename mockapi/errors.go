package mockapi

import (
	"net/http"

	"github.com/leetcoach/client/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func ErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"Problem not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoProblemMatches = "no_problem_matches"

func ErrNoProblemMatches() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoProblemMatches,
		"No problems match the given filters",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"Submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidLanguage = "invalid_language"

func ErrInvalidLanguage() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidLanguage,
		"Language must be 'python' or 'cpp'",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSolutionsLocked = "solutions_locked"

func ErrSolutionsLocked() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSolutionsLocked,
		"Solutions are locked until you make your first submission",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeSolutionNotFound = "solution_not_found"

func ErrSolutionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSolutionNotFound,
		"Solution not found for this problem instance",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidBody = "invalid_body"

func ErrInvalidBody() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidBody,
		"Request body is not valid JSON",
	).SetHttpStatusCode(http.StatusUnprocessableEntity)
}
