// Package discovery finds tagged resources and resolves scaling group
// membership.
package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	tagtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"

	"github.com/yairfalse/nightshift/types"
)

// Locator lists resources of one type carrying an exact tag.
type Locator struct {
	api    TaggingAPI
	region string
}

// NewLocator creates a locator for one region.
func NewLocator(api TaggingAPI, region string) *Locator {
	return &Locator{api: api, region: region}
}

// Locate returns the ARNs of every resourceType resource tagged with
// filter, following continuation tokens until none is returned.
// An empty-string token ends the listing like an absent one.
func (l *Locator) Locate(ctx context.Context, resourceType string, filter types.TagFilter) (*types.IDSet, error) {
	found := types.NewIDSet()
	var token *string

	for {
		output, err := l.api.GetResources(ctx, &resourcegroupstaggingapi.GetResourcesInput{
			ResourceTypeFilters: []string{resourceType},
			TagFilters: []tagtypes.TagFilter{{
				Key:    aws.String(filter.Key),
				Values: []string{filter.Value},
			}},
			PaginationToken: token,
		})
		if err != nil {
			return nil, &types.DiscoveryError{
				Op:           "get resources",
				Region:       l.region,
				ResourceType: resourceType,
				Err:          err,
			}
		}

		for _, mapping := range output.ResourceTagMappingList {
			found.Add(aws.ToString(mapping.ResourceARN))
		}

		if aws.ToString(output.PaginationToken) == "" {
			break
		}
		token = output.PaginationToken
	}

	return found, nil
}
