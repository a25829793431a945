package usecase

import (
	"context"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// FixtureProvider is the upstream sports-data source. The season is part of
// the provider's configuration.
type FixtureProvider interface {
	FetchTeamFixtures(ctx context.Context, teamID int64) ([]fixture.Fixture, error)
	FetchHeadToHead(ctx context.Context, team1ID, team2ID int64) ([]fixture.Fixture, error)
}

// FixtureFetcher turns every provider failure into an empty result. Failures
// are reported through the logger and the active span only.
type FixtureFetcher struct {
	provider FixtureProvider
	logger   *logging.Logger
}

func NewFixtureFetcher(provider FixtureProvider, logger *logging.Logger) *FixtureFetcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureFetcher{
		provider: provider,
		logger:   logger,
	}
}

func (f *FixtureFetcher) TeamFixtures(ctx context.Context, teamID int64) []fixture.Fixture {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureFetcher.TeamFixtures", attribute.Int64("team_id", teamID))
	defer span.End()

	items, err := f.provider.FetchTeamFixtures(ctx, teamID)
	if err != nil {
		f.logger.WarnContext(ctx, "fetch team fixtures failed, continuing without data",
			"team_id", teamID,
			"error", err,
		)
		markSpanDegraded(span, "team fixtures unavailable", err)
		return []fixture.Fixture{}
	}
	if items == nil {
		items = []fixture.Fixture{}
	}

	f.logger.DebugContext(ctx, "fetched team fixtures", "team_id", teamID, "count", len(items))
	return items
}

func (f *FixtureFetcher) HeadToHead(ctx context.Context, team1ID, team2ID int64) []fixture.Fixture {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureFetcher.HeadToHead",
		attribute.Int64("team1_id", team1ID),
		attribute.Int64("team2_id", team2ID),
	)
	defer span.End()

	items, err := f.provider.FetchHeadToHead(ctx, team1ID, team2ID)
	if err != nil {
		f.logger.WarnContext(ctx, "fetch head-to-head failed, continuing without data",
			"team1_id", team1ID,
			"team2_id", team2ID,
			"error", err,
		)
		markSpanDegraded(span, "head-to-head unavailable", err)
		return []fixture.Fixture{}
	}
	if items == nil {
		items = []fixture.Fixture{}
	}
	return items
}
