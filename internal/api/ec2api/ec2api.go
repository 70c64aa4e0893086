// Package ec2api provides interfaces for the Amazon EC2 networking API.
package ec2api

import (
	"context"
)

// DescribeSubnetsAPI is the interface for listing subnets.
type DescribeSubnetsAPI interface {
	DescribeSubnets(ctx context.Context, params *DescribeSubnetsInput, optFns ...func(*Options)) (*DescribeSubnetsOutput, error)
}
