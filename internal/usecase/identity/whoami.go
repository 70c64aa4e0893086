// Package identity provides the caller identity use case.
package identity

import (
	"context"

	"github.com/samber/lo"

	"github.com/mpyw/sublook/internal/api/stsapi"
	"github.com/mpyw/sublook/internal/usecase/subnet"
)

// WhoAmIInput holds input for the whoami use case.
type WhoAmIInput struct {
	Region string
}

// WhoAmIOutput holds the resolved caller identity.
type WhoAmIOutput struct {
	AccountID string
	ARN       string
	UserID    string
	Region    string
	Profile   string // shared config profile targeting AccountID, if any
}

// WhoAmIUseCase resolves who the configured credentials belong to.
type WhoAmIUseCase struct {
	Client stsapi.GetCallerIdentityAPI

	// FindProfile maps an account ID to a shared config profile name. Optional.
	FindProfile func(accountID string) string
}

// Execute runs the whoami use case.
// Any failure is reported as an authentication error.
func (u *WhoAmIUseCase) Execute(ctx context.Context, input WhoAmIInput) (*WhoAmIOutput, error) {
	out, err := u.Client.GetCallerIdentity(ctx, &stsapi.GetCallerIdentityInput{})
	if err != nil {
		return nil, &subnet.AuthenticationError{Err: err}
	}

	result := &WhoAmIOutput{
		AccountID: lo.FromPtr(out.Account),
		ARN:       lo.FromPtr(out.Arn),
		UserID:    lo.FromPtr(out.UserId),
		Region:    input.Region,
	}
	if u.FindProfile != nil && result.AccountID != "" {
		result.Profile = u.FindProfile(result.AccountID)
	}

	return result, nil
}
