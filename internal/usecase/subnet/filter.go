package subnet

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mpyw/sublook/internal/api/ec2api"
)

// BuildFilters translates tags into one "tag:<key>" filter per pair.
// Filters are ordered by key so requests are reproducible.
func BuildFilters(tags map[string]string) []ec2api.Filter {
	keys := lo.Keys(tags)
	slices.Sort(keys)

	return lo.Map(keys, func(key string, _ int) ec2api.Filter {
		return ec2api.Filter{
			Name:   lo.ToPtr(ec2api.FilterPrefixTag + key),
			Values: []string{tags[key]},
		}
	})
}
