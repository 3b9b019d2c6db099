package aggregators

import (
	"encoding/json"
	"fmt"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"
	"site-analytics/internal/planners"
)

const (
	defaultPath    = "/"
	unknownCountry = "Unknown"
)

// BreakdownPartial holds the path and country counts of one chunk, or the merge of several.
type BreakdownPartial struct {
	Paths     map[string]int64
	Countries map[string]int64
}

func NewBreakdownPartial() *BreakdownPartial {
	return &BreakdownPartial{
		Paths:     make(map[string]int64),
		Countries: make(map[string]int64),
	}
}

//go:generate mockgen -source=breakdown_aggregator.go -destination=./mocks/breakdown_aggregator_mock.go -package=mocks
type BreakdownAggregator interface {
	// Partial parses the data of one breakdown chunk. A chunk either parses completely
	// or yields an error and contributes nothing.
	Partial(data json.RawMessage, query *planners.BreakdownQuery, mode models.Mode) (*BreakdownPartial, error)
	// Merge sums partials into a new partial. The result does not depend on their order.
	Merge(partials []*BreakdownPartial) *BreakdownPartial
}

type breakdownAggregator struct{}

func NewBreakdownAggregator() BreakdownAggregator {
	return &breakdownAggregator{}
}

func (a *breakdownAggregator) Partial(data json.RawMessage, query *planners.BreakdownQuery, mode models.Mode) (*BreakdownPartial, error) {
	zone, err := firstZone[map[string]json.RawMessage](data)
	if err != nil {
		return nil, err
	}

	partial := NewBreakdownPartial()
	for i := range query.Windows {
		var paths []pathGroup
		if err := decodeAlias(zone, planners.PathsAlias(i), &paths); err != nil {
			return nil, err
		}
		for _, group := range paths {
			path := defaultPath
			if group.Dimensions.ClientRequestPath != nil {
				path = *group.Dimensions.ClientRequestPath
			}
			if mode.IsEngagement() && !IsContentPath(path) {
				continue
			}
			partial.Paths[path] += group.Count
		}

		var countries []countryGroup
		if err := decodeAlias(zone, planners.CountriesAlias(i), &countries); err != nil {
			return nil, err
		}
		for _, group := range countries {
			country := unknownCountry
			if group.Dimensions.ClientCountryName != nil && *group.Dimensions.ClientCountryName != "" {
				country = *group.Dimensions.ClientCountryName
			}
			partial.Countries[country] += group.Count
		}
	}

	return partial, nil
}

func (a *breakdownAggregator) Merge(partials []*BreakdownPartial) *BreakdownPartial {
	merged := NewBreakdownPartial()
	for _, partial := range partials {
		if partial == nil {
			continue
		}
		for k, v := range partial.Paths {
			merged.Paths[k] += v
		}
		for k, v := range partial.Countries {
			merged.Countries[k] += v
		}
	}
	return merged
}

func decodeAlias(zone map[string]json.RawMessage, alias string, out any) error {
	raw, ok := zone[alias]
	if !ok {
		return fmt.Errorf("%w: missing field %q", cloudflare.ErrParse, alias)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: field %q: %w", cloudflare.ErrParse, alias, err)
	}
	return nil
}
