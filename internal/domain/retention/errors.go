package retention

import "errors"

var (
	ErrInvalidPolicy         = errors.New("retention policy values must be positive integers")
	ErrPolicyUpdateForbidden = errors.New("only admins can update retention settings")
	ErrPolicyNotInitialized  = errors.New("retention policy has not been initialized")
)
