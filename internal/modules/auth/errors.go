package auth

import "errors"

var (
	ErrInvalidCredentials            = errors.New("invalid credentials")
	ErrAccountLocked                 = errors.New("account temporarily locked")
	ErrEmailNotVerified              = errors.New("email not verified")
	ErrRateLimitExceeded             = errors.New("verification code requested too recently")
	ErrInvalidVerificationCode       = errors.New("invalid or expired verification code")
	ErrInvalidVerificationCodeFormat = errors.New("verification code must be 6 digits")
	ErrTooManyAttempts               = errors.New("too many verification attempts")
)
