// Package subnet provides use cases for EC2 subnet lookups.
package subnet

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/mpyw/sublook/internal/api/ec2api"
	"github.com/mpyw/sublook/internal/logging"
)

// Connector opens an EC2 client scoped to a region.
type Connector interface {
	Connect(ctx context.Context, region string) (ec2api.DescribeSubnetsAPI, error)
}

// LookupInput holds input for the lookup use case.
type LookupInput struct {
	Region string
	Tags   map[string]string // tag key -> exact required value
}

// SubnetInfo holds the display attributes of a matched subnet.
type SubnetInfo struct {
	SubnetID         string
	VPCID            string
	AvailabilityZone string
	CIDRBlock        string
	Name             string
	State            string
}

// LookupOutput holds the result of the lookup use case.
// SubnetIDs and Subnets share the same order, which is the order EC2 returned.
type LookupOutput struct {
	Region    string
	SubnetIDs []string
	Subnets   []SubnetInfo
}

// LookupUseCase executes tag-filtered subnet lookups.
type LookupUseCase struct {
	Connector Connector
	Logger    logrus.FieldLogger
}

// Execute runs the lookup use case.
func (u *LookupUseCase) Execute(ctx context.Context, input LookupInput) (*LookupOutput, error) {
	if input.Region == "" {
		return nil, ErrMissingRegion
	}
	if len(input.Tags) == 0 {
		return nil, ErrMissingTags
	}

	log := logging.OrDiscard(u.Logger).WithField("region", input.Region)

	client, err := u.Connector.Connect(ctx, input.Region)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	filters := BuildFilters(input.Tags)
	log.WithField("filters", filterNames(filters)).Debug("describing subnets")

	output := &LookupOutput{
		Region:    input.Region,
		SubnetIDs: []string{},
		Subnets:   []SubnetInfo{},
	}
	seen := make(map[string]struct{})
	pages := 0

	paginator := ec2api.NewDescribeSubnetsPaginator(client, &ec2api.DescribeSubnetsInput{
		Filters: filters,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if IsAuthAPIError(err) {
				return nil, &AuthenticationError{Err: err}
			}
			return nil, fmt.Errorf("failed to describe subnets: %w", err)
		}
		pages++

		for _, s := range page.Subnets {
			id := lo.FromPtr(s.SubnetId)
			if _, dup := seen[id]; dup || id == "" {
				continue
			}
			seen[id] = struct{}{}
			output.SubnetIDs = append(output.SubnetIDs, id)
			output.Subnets = append(output.Subnets, toSubnetInfo(s))
		}
	}

	log.WithFields(logrus.Fields{
		"pages":   pages,
		"matched": len(output.SubnetIDs),
	}).Debug("subnets described")

	return output, nil
}

func toSubnetInfo(s ec2api.Subnet) SubnetInfo {
	name, _ := lo.Find(s.Tags, func(tag ec2api.Tag) bool {
		return lo.FromPtr(tag.Key) == "Name"
	})
	return SubnetInfo{
		SubnetID:         lo.FromPtr(s.SubnetId),
		VPCID:            lo.FromPtr(s.VpcId),
		AvailabilityZone: lo.FromPtr(s.AvailabilityZone),
		CIDRBlock:        lo.FromPtr(s.CidrBlock),
		Name:             lo.FromPtr(name.Value),
		State:            string(s.State),
	}
}

func filterNames(filters []ec2api.Filter) []string {
	return lo.Map(filters, func(f ec2api.Filter, _ int) string {
		return lo.FromPtr(f.Name) + "=" + lo.FirstOrEmpty(f.Values)
	})
}
