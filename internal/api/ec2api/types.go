package ec2api

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Options is a re-exported EC2 options type.
type Options = ec2.Options

// DescribeSubnetsInput is a re-exported EC2 input type.
type DescribeSubnetsInput = ec2.DescribeSubnetsInput

// DescribeSubnetsOutput is a re-exported EC2 output type.
type DescribeSubnetsOutput = ec2.DescribeSubnetsOutput

// Filter is a re-exported EC2 type.
type Filter = types.Filter

// Subnet is a re-exported EC2 type.
type Subnet = types.Subnet

// Tag is a re-exported EC2 type.
type Tag = types.Tag

// NewDescribeSubnetsPaginator is a re-exported EC2 factory function for dependency injection.
//
//nolint:gochecknoglobals // Re-export of AWS SDK factory function for dependency injection
var NewDescribeSubnetsPaginator = ec2.NewDescribeSubnetsPaginator

// FilterPrefixTag is the filter name prefix EC2 uses to match on a tag key.
const FilterPrefixTag = "tag:"
