package aggregators

import (
	"context"
	"time"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"
	"site-analytics/internal/planners"
	"site-analytics/internal/shared/loggers"
	"site-analytics/internal/shared/metrics"
	"site-analytics/internal/shared/svcerrors"
	"site-analytics/internal/shared/ulid"

	"github.com/rs/zerolog"
)

const DefaultMaxDays = 90

//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// FetchAnalytics builds the report for the last days of the zone. A failed totals
	// query fails the call; a failed breakdown chunk is skipped and recorded in the
	// report's PartialFailure.
	FetchAnalytics(ctx context.Context, zoneID, apiToken string, days int, engagement bool) (*models.AnalyticsReport, error)
}

type AnalyticsServiceOptions struct {
	MaxDays int
	// Now anchors the period; defaults to time.Now.
	Now func() time.Time
}

type analyticsService struct {
	client              cloudflare.Client
	planner             planners.QueryPlanner
	slotAggregator      SlotAggregator
	breakdownAggregator BreakdownAggregator
	maxDays             int
	now                 func() time.Time
}

func NewAnalyticsService(
	client cloudflare.Client,
	planner planners.QueryPlanner,
	slotAggregator SlotAggregator,
	breakdownAggregator BreakdownAggregator,
	opts AnalyticsServiceOptions,
) AnalyticsService {
	if opts.MaxDays < 1 {
		opts.MaxDays = DefaultMaxDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &analyticsService{
		client:              client,
		planner:             planner,
		slotAggregator:      slotAggregator,
		breakdownAggregator: breakdownAggregator,
		maxDays:             opts.MaxDays,
		now:                 opts.Now,
	}
}

func (s *analyticsService) FetchAnalytics(ctx context.Context, zoneID, apiToken string, days int, engagement bool) (*models.AnalyticsReport, error) {
	mode := models.ModeFromEngagement(engagement)
	now := s.now()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldFetchID, ulid.NewULIDAt(now)).
		Str(loggers.FieldZoneID, zoneID).
		Str(loggers.FieldMode, string(mode)).
		Int(loggers.FieldPeriod, days).
		Logger()

	report, svcErr := s.fetch(ctx, &logger, now, zoneID, apiToken, days, mode)
	if svcErr != nil {
		metricFetchTotal.WithLabelValues(string(mode), svcErr.Code).Inc()
		logger.Debug().Str(loggers.FieldErrorCode, svcErr.Code).Err(svcErr.Cause).Msg("analytics fetch failed")
		return nil, svcErr
	}

	metricFetchTotal.WithLabelValues(string(mode), metrics.ValueNoError).Inc()
	logger.Debug().Int64("total", report.TotalRequests).Msg("analytics fetch finished")
	return report, nil
}

func (s *analyticsService) fetch(ctx context.Context, logger *zerolog.Logger, now time.Time, zoneID, apiToken string, days int, mode models.Mode) (*models.AnalyticsReport, *svcerrors.ServiceError) {
	if zoneID == "" {
		return nil, errMissingCredentials("zone id")
	}
	if apiToken == "" {
		return nil, errMissingCredentials("api token")
	}
	if days < 1 || days > s.maxDays {
		return nil, errInvalidDays(days, s.maxDays)
	}

	period, err := models.NewPeriod(days, now)
	if err != nil {
		return nil, errInternalInvalidPeriod(err)
	}
	logger.Debug().Str("granularity", string(period.Granularity)).Msg("analytics fetch started")

	if err := ctx.Err(); err != nil {
		return nil, errCanceled(err)
	}
	data, err := s.client.Query(ctx, apiToken, s.planner.MainQuery(zoneID, period, mode))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errCanceled(ctxErr)
		}
		return nil, errMainQueryFailed(err)
	}
	slots, err := s.slotAggregator.Aggregate(data, period.Granularity, mode)
	if err != nil {
		return nil, errMainQueryFailed(err)
	}

	partials, failure, svcErr := s.fetchBreakdowns(ctx, logger, zoneID, apiToken, period, mode)
	if svcErr != nil {
		return nil, svcErr
	}

	series := BuildSeries(period, slots.Slots)
	return AssembleReport(period, mode, series, slots, s.breakdownAggregator.Merge(partials), failure), nil
}

// fetchBreakdowns runs the chunk queries in order. Each chunk succeeds or fails on its own;
// only a done context aborts the loop.
func (s *analyticsService) fetchBreakdowns(ctx context.Context, logger *zerolog.Logger, zoneID, apiToken string, period models.Period, mode models.Mode) ([]*BreakdownPartial, *models.PartialFailure, *svcerrors.ServiceError) {
	queries := s.planner.BreakdownQueries(zoneID, period, mode)
	partials := make([]*BreakdownPartial, 0, len(queries))
	var failure *models.PartialFailure

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return nil, nil, errCanceled(err)
		}

		partial, err := s.fetchBreakdown(ctx, apiToken, query, mode)
		if err == nil {
			metricBreakdownChunkTotal.WithLabelValues(chunkOutcomeOK).Inc()
			partials = append(partials, partial)
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, errCanceled(ctxErr)
		}

		span := query.Span()
		metricBreakdownChunkTotal.WithLabelValues(chunkOutcomeFailed).Inc()
		logger.Warn().
			Err(err).
			Int(loggers.FieldChunkIndex, query.Index).
			Time(loggers.FieldWindowStart, span.Start).
			Time(loggers.FieldWindowEnd, span.End).
			Msg("skipped breakdown chunk")

		if failure == nil {
			failure = &models.PartialFailure{}
		}
		failure.FailedChunks++
		failure.FailedWindows = append(failure.FailedWindows, models.FailedWindow{
			Start:  span.Start,
			End:    span.End,
			Reason: err.Error(),
		})
	}

	return partials, failure, nil
}

func (s *analyticsService) fetchBreakdown(ctx context.Context, apiToken string, query *planners.BreakdownQuery, mode models.Mode) (*BreakdownPartial, error) {
	data, err := s.client.Query(ctx, apiToken, query.Query)
	if err != nil {
		return nil, err
	}
	return s.breakdownAggregator.Partial(data, query, mode)
}
