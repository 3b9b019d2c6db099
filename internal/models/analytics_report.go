package models

import "time"

// AnalyticsReport is the aggregated traffic view for one period.
//
// Example JSON:
//
//	{
//	  "periodLabel": "7d",
//	  "granularity": "daily",
//	  "mode": "standard",
//	  "totalRequests": 1530,
//	  "timeSeries": [
//	    {"label": "2026-10-09", "count": 210, "bytes": 1048576, "cachedBytes": 524288, "cachedRequests": 90, "threats": 0}
//	  ],
//	  "topPaths": [{"path": "/", "count": 400}],
//	  "topCountries": [{"country": "DE", "count": 300}],
//	  "statusCodes": [{"status": 200, "count": 1400}],
//	  "browsers": [{"browser": "Chrome", "count": 700}],
//	  "partialFailure": {"failedChunks": 1, "failedWindows": [{"start": "...", "end": "...", "reason": "..."}]}
//	}
type AnalyticsReport struct {
	PeriodLabel    string          `json:"periodLabel"`
	Granularity    Granularity     `json:"granularity"`
	Mode           Mode            `json:"mode"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	TotalRequests  int64           `json:"totalRequests"`
	TimeSeries     []TimeSlot      `json:"timeSeries"`
	TopPaths       []PathCount     `json:"topPaths"`
	TopCountries   []CountryCount  `json:"topCountries"`
	StatusCodes    []StatusCount   `json:"statusCodes"`
	Browsers       []BrowserCount  `json:"browsers"`
	PartialFailure *PartialFailure `json:"partialFailure,omitempty"`
}

// TimeSlot holds the metrics of one hour or one day.
type TimeSlot struct {
	Label          string `json:"label"`
	Count          int64  `json:"count"`
	Bytes          int64  `json:"bytes"`
	CachedBytes    int64  `json:"cachedBytes"`
	CachedRequests int64  `json:"cachedRequests"`
	Threats        int64  `json:"threats"`
}

type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type StatusCount struct {
	Status int   `json:"status"`
	Count  int64 `json:"count"`
}

// BrowserCount counts page views per browser family.
type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// PartialFailure records breakdown windows whose data could not be fetched.
// Totals are never partial; only paths and countries degrade.
type PartialFailure struct {
	FailedChunks  int            `json:"failedChunks"`
	FailedWindows []FailedWindow `json:"failedWindows"`
}

type FailedWindow struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason"`
}
