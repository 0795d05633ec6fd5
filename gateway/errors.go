package gateway

import (
	"github.com/leetcoach/client/srvcerror"
)

const ErrCodeUnexpectedStatus = "unexpected_status"

func ErrUnexpectedStatus(status int, detail string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnexpectedStatus,
		detail,
	).SetHttpStatusCode(status)
}

const ErrCodeDecodeResponse = "decode_response"

func ErrDecodeResponse() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDecodeResponse,
		"server sent a response that could not be read",
	)
}
