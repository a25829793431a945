package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchup-insight/internal/domain/teamstats"
	"go.opentelemetry.io/otel/attribute"
)

type StatsService struct {
	fetcher *FixtureFetcher
}

func NewStatsService(fetcher *FixtureFetcher) *StatsService {
	return &StatsService{fetcher: fetcher}
}

// TeamStatistics fetches the team's season fixtures and aggregates them.
// ok is false when no fixture could be aggregated.
func (s *StatsService) TeamStatistics(ctx context.Context, teamID int64) (teamstats.TeamStatistics, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamStatistics", attribute.Int64("team_id", teamID))
	defer span.End()

	fixtures := s.fetcher.TeamFixtures(ctx, teamID)
	stats, ok := teamstats.Aggregate(teamID, fixtures)
	if !ok {
		markSpanDegraded(span, "no fixtures to aggregate", nil)
	}
	return stats, ok
}

// GetTeamStatistics is the error-returning variant used by the JSON API.
func (s *StatsService) GetTeamStatistics(ctx context.Context, teamID int64) (teamstats.TeamStatistics, error) {
	if teamID <= 0 {
		return teamstats.TeamStatistics{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	stats, ok := s.TeamStatistics(ctx, teamID)
	if !ok {
		return teamstats.TeamStatistics{}, fmt.Errorf("%w: no fixtures available for team=%d", ErrInsufficientData, teamID)
	}
	return stats, nil
}
