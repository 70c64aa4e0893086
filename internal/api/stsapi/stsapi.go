// Package stsapi provides interfaces for AWS Security Token Service.
package stsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options is a re-exported STS options type.
type Options = sts.Options

// GetCallerIdentityInput is a re-exported STS input type.
type GetCallerIdentityInput = sts.GetCallerIdentityInput

// GetCallerIdentityOutput is a re-exported STS output type.
type GetCallerIdentityOutput = sts.GetCallerIdentityOutput

// GetCallerIdentityAPI is the interface for resolving the caller identity.
type GetCallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *GetCallerIdentityInput, optFns ...func(*Options)) (*GetCallerIdentityOutput, error)
}
