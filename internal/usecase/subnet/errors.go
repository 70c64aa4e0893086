package subnet

import (
	"errors"

	"github.com/aws/smithy-go"
)

var (
	// ErrMissingRegion is returned when no region is given. No connection is attempted.
	ErrMissingRegion = errors.New("region must be specified")

	// ErrMissingTags is returned when the tag filter is empty.
	ErrMissingTags = errors.New("at least one tag must be specified")
)

// AuthenticationError reports that the provider rejected or could not resolve credentials.
// Its message is the provider's message unchanged.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return e.Err.Error()
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// authErrorCodes are EC2/STS API error codes that mean the request was not authenticated.
//
//nolint:gochecknoglobals // Immutable lookup table
var authErrorCodes = map[string]struct{}{
	"AuthFailure":                 {},
	"InvalidClientTokenId":        {},
	"SignatureDoesNotMatch":       {},
	"ExpiredToken":                {},
	"RequestExpired":              {},
	"UnrecognizedClientException": {},
}

// IsAuthAPIError reports whether err carries an API error code that denotes an authentication failure.
func IsAuthAPIError(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	_, ok := authErrorCodes[apiErr.ErrorCode()]
	return ok
}
