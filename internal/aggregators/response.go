package aggregators

import (
	"encoding/json"
	"fmt"

	"site-analytics/internal/cloudflare"
)

// zonesData is the common envelope of every zone-scoped GraphQL response:
// {"viewer": {"zones": [ ... ]}}.
type zonesData[T any] struct {
	Viewer struct {
		Zones []T `json:"zones"`
	} `json:"viewer"`
}

type totalsZone struct {
	Totals []totalsGroup `json:"totals"`
}

type totalsGroup struct {
	Dimensions struct {
		Date     string `json:"date"`
		Datetime string `json:"datetime"`
	} `json:"dimensions"`
	Sum struct {
		Requests          int64 `json:"requests"`
		PageViews         int64 `json:"pageViews"`
		Bytes             int64 `json:"bytes"`
		CachedBytes       int64 `json:"cachedBytes"`
		CachedRequests    int64 `json:"cachedRequests"`
		Threats           int64 `json:"threats"`
		ResponseStatusMap []struct {
			EdgeResponseStatus int   `json:"edgeResponseStatus"`
			Requests           int64 `json:"requests"`
		} `json:"responseStatusMap"`
		BrowserMap []struct {
			UABrowserFamily string `json:"uaBrowserFamily"`
			PageViews       int64  `json:"pageViews"`
		} `json:"browserMap"`
	} `json:"sum"`
}

type pathGroup struct {
	Count      int64 `json:"count"`
	Dimensions struct {
		ClientRequestPath *string `json:"clientRequestPath"`
	} `json:"dimensions"`
}

type countryGroup struct {
	Count      int64 `json:"count"`
	Dimensions struct {
		ClientCountryName *string `json:"clientCountryName"`
	} `json:"dimensions"`
}

// firstZone decodes data and returns the first zone entry.
func firstZone[T any](data json.RawMessage) (T, error) {
	var (
		zero     T
		envelope zonesData[T]
	)
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zero, fmt.Errorf("%w: %w", cloudflare.ErrParse, err)
	}
	if len(envelope.Viewer.Zones) == 0 {
		return zero, fmt.Errorf("%w: no zone data returned", cloudflare.ErrParse)
	}
	return envelope.Viewer.Zones[0], nil
}
