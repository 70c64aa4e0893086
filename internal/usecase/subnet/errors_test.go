package subnet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/mpyw/sublook/internal/usecase/subnet"
)

func TestIsAuthAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "AuthFailure", err: &smithy.GenericAPIError{Code: "AuthFailure"}, want: true},
		{name: "wrapped ExpiredToken", err: fmt.Errorf("op: %w", &smithy.GenericAPIError{Code: "ExpiredToken"}), want: true},
		{name: "InvalidParameterValue", err: &smithy.GenericAPIError{Code: "InvalidParameterValue"}, want: false},
		{name: "UnauthorizedOperation is a permission problem", err: &smithy.GenericAPIError{Code: "UnauthorizedOperation"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, subnet.IsAuthAPIError(tt.err))
		})
	}
}

func TestAuthenticationError(t *testing.T) {
	t.Parallel()

	inner := errors.New("NoCredentialProviders: no valid providers in chain")
	err := &subnet.AuthenticationError{Err: inner}

	assert.Equal(t, inner.Error(), err.Error())
	assert.ErrorIs(t, err, inner)
}
