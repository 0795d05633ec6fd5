package conf

import "github.com/leetcoach/client/srvcerror"

const ErrCodeInvalidConfig = "invalid_config"

func ErrInvalidConfig(reason string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidConfig,
		"invalid configuration: "+reason,
	)
}
