package planners

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"
)

const (
	DefaultChunkDays         = 5
	DefaultMaxFieldsPerQuery = 15
	DefaultMaxWindow         = 24 * time.Hour

	// fieldsPerWindow is one paths alias plus one countries alias.
	fieldsPerWindow = 2

	mainQueryLimit      = 1000
	pathLimitStandard   = 10
	pathLimitEngagement = 50
	countryLimit        = 10

	timeLayout = "2006-01-02T15:04:05Z"
	dateLayout = "2006-01-02"
)

// TotalsAlias is the alias of the grouped totals in the main query response.
const TotalsAlias = "totals"

var ErrInvalidPlannerOptions = errors.New("invalid planner options")

type PlannerOptions struct {
	// ChunkDays is the number of breakdown windows fetched per query.
	ChunkDays int
	// MaxFieldsPerQuery caps the aliased fields of one breakdown query.
	MaxFieldsPerQuery int
	// MaxWindow is the widest time range a single breakdown field may cover.
	MaxWindow time.Duration
}

// BreakdownQuery covers a run of consecutive windows. Window i of the chunk is
// answered under PathsAlias(i) and CountriesAlias(i).
type BreakdownQuery struct {
	Index   int
	Windows []models.TimeWindow
	Query   *cloudflare.GraphQLQuery
}

// Span is the overall range covered by the chunk.
func (q *BreakdownQuery) Span() models.TimeWindow {
	return models.TimeWindow{Start: q.Windows[0].Start, End: q.Windows[len(q.Windows)-1].End}
}

func (q *BreakdownQuery) FieldCount() int {
	return fieldsPerWindow * len(q.Windows)
}

func PathsAlias(i int) string {
	return fmt.Sprintf("paths_%d", i)
}

func CountriesAlias(i int) string {
	return fmt.Sprintf("countries_%d", i)
}

//go:generate mockgen -source=query_planner.go -destination=./mocks/query_planner_mock.go -package=mocks
type QueryPlanner interface {
	// MainQuery builds the totals query spanning the whole period.
	MainQuery(zoneID string, period models.Period, mode models.Mode) *cloudflare.GraphQLQuery
	// BreakdownQueries builds the ordered path/country chunk queries for the period.
	BreakdownQueries(zoneID string, period models.Period, mode models.Mode) []*BreakdownQuery
}

type queryPlanner struct {
	chunkDays int
	maxWindow time.Duration
}

func NewQueryPlanner(opts PlannerOptions) (QueryPlanner, error) {
	if opts.ChunkDays < 1 {
		return nil, fmt.Errorf("%w: chunk days must be at least 1, got %d", ErrInvalidPlannerOptions, opts.ChunkDays)
	}
	if fieldsPerWindow*opts.ChunkDays > opts.MaxFieldsPerQuery {
		return nil, fmt.Errorf("%w: %d chunk days need %d fields, cap is %d",
			ErrInvalidPlannerOptions, opts.ChunkDays, fieldsPerWindow*opts.ChunkDays, opts.MaxFieldsPerQuery)
	}
	if opts.MaxWindow < time.Hour {
		return nil, fmt.Errorf("%w: max window must be at least 1h, got %s", ErrInvalidPlannerOptions, opts.MaxWindow)
	}

	return &queryPlanner{chunkDays: opts.ChunkDays, maxWindow: opts.MaxWindow}, nil
}

func (p *queryPlanner) MainQuery(zoneID string, period models.Period, mode models.Mode) *cloudflare.GraphQLQuery {
	var (
		dataset, varType, dimension, since, until string
		filter                                    string
	)

	if period.Granularity == models.GranularityHourly {
		dataset, varType, dimension = "httpRequests1hGroups", "Time!", "datetime"
		filter = "{datetime_geq: $since, datetime_lt: $until}"
		since = period.Start.Format(timeLayout)
		until = period.LastSlotStart().Add(time.Hour).Format(timeLayout)
	} else {
		dataset, varType, dimension = "httpRequests1dGroups", "Date!", "date"
		filter = "{date_geq: $since, date_leq: $until}"
		since = period.Start.Format(dateLayout)
		until = period.LastSlotStart().Format(dateLayout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "query MainTotals($zoneTag: string!, $since: %s, $until: %s) {\n", varType, varType)
	b.WriteString("  viewer {\n")
	b.WriteString("    zones(filter: {zoneTag: $zoneTag}) {\n")
	fmt.Fprintf(&b, "      %s: %s(limit: %d, filter: %s, orderBy: [%s_ASC]) {\n",
		TotalsAlias, dataset, mainQueryLimit, filter, dimension)
	fmt.Fprintf(&b, "        dimensions { %s }\n", dimension)
	b.WriteString("        sum {\n")
	fmt.Fprintf(&b, "          %s\n", countMetric(mode))
	b.WriteString("          bytes\n")
	b.WriteString("          cachedBytes\n")
	b.WriteString("          cachedRequests\n")
	b.WriteString("          threats\n")
	b.WriteString("          responseStatusMap { edgeResponseStatus requests }\n")
	b.WriteString("          browserMap { uaBrowserFamily pageViews }\n")
	b.WriteString("        }\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return &cloudflare.GraphQLQuery{
		Query: b.String(),
		Variables: map[string]any{
			"zoneTag": zoneID,
			"since":   since,
			"until":   until,
		},
	}
}

func (p *queryPlanner) BreakdownQueries(zoneID string, period models.Period, mode models.Mode) []*BreakdownQuery {
	windows := p.splitWindows(period.Windows())

	queries := make([]*BreakdownQuery, 0, (len(windows)+p.chunkDays-1)/p.chunkDays)
	for start := 0; start < len(windows); start += p.chunkDays {
		end := min(start+p.chunkDays, len(windows))
		chunk := windows[start:end:end]
		queries = append(queries, &BreakdownQuery{
			Index:   len(queries),
			Windows: chunk,
			Query:   p.breakdownQuery(zoneID, chunk, mode),
		})
	}
	return queries
}

// splitWindows cuts any window wider than maxWindow into maxWindow-sized pieces.
func (p *queryPlanner) splitWindows(windows []models.TimeWindow) []models.TimeWindow {
	out := make([]models.TimeWindow, 0, len(windows))
	for _, w := range windows {
		for w.Duration() > p.maxWindow {
			cut := w.Start.Add(p.maxWindow)
			out = append(out, models.TimeWindow{Start: w.Start, End: cut})
			w.Start = cut
		}
		if w.Duration() > 0 {
			out = append(out, w)
		}
	}
	return out
}

func (p *queryPlanner) breakdownQuery(zoneID string, windows []models.TimeWindow, mode models.Mode) *cloudflare.GraphQLQuery {
	pathLimit := pathLimitStandard
	statusFilter := ""
	if mode.IsEngagement() {
		// over-fetch paths since non-content ones are dropped afterwards
		pathLimit = pathLimitEngagement
		statusFilter = ", edgeResponseStatus: 200"
	}

	variables := map[string]any{"zoneTag": zoneID}
	params := make([]string, 0, 1+2*len(windows))
	params = append(params, "$zoneTag: string!")

	var fields strings.Builder
	for i, w := range windows {
		sinceVar, untilVar := fmt.Sprintf("since%d", i), fmt.Sprintf("until%d", i)
		variables[sinceVar] = w.Start.UTC().Format(timeLayout)
		variables[untilVar] = w.End.UTC().Format(timeLayout)
		params = append(params, fmt.Sprintf("$%s: Time!", sinceVar), fmt.Sprintf("$%s: Time!", untilVar))

		filter := fmt.Sprintf("{datetime_geq: $%s, datetime_lt: $%s%s}", sinceVar, untilVar, statusFilter)
		fmt.Fprintf(&fields, "      %s: httpRequestsAdaptiveGroups(limit: %d, filter: %s, orderBy: [count_DESC]) {\n",
			PathsAlias(i), pathLimit, filter)
		fields.WriteString("        count\n")
		fields.WriteString("        dimensions { clientRequestPath }\n")
		fields.WriteString("      }\n")
		fmt.Fprintf(&fields, "      %s: httpRequestsAdaptiveGroups(limit: %d, filter: %s, orderBy: [count_DESC]) {\n",
			CountriesAlias(i), countryLimit, filter)
		fields.WriteString("        count\n")
		fields.WriteString("        dimensions { clientCountryName }\n")
		fields.WriteString("      }\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "query Breakdown(%s) {\n", strings.Join(params, ", "))
	b.WriteString("  viewer {\n")
	b.WriteString("    zones(filter: {zoneTag: $zoneTag}) {\n")
	b.WriteString(fields.String())
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return &cloudflare.GraphQLQuery{Query: b.String(), Variables: variables}
}

func countMetric(mode models.Mode) string {
	if mode.IsEngagement() {
		return "pageViews"
	}
	return "requests"
}
