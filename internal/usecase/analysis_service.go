package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchup-insight/internal/domain/betting"
	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
)

const ErrMsgInsufficientData = "Could not retrieve data for one or both teams. Check the service logs for the provider response."

// AnalysisResult is built per request and handed to the presentation layer.
// When Error is set, every other field is left at its zero value.
type AnalysisResult struct {
	Team1ID    int64
	Team2ID    int64
	Stats1     *teamstats.TeamStatistics
	Stats2     *teamstats.TeamStatistics
	HeadToHead []fixture.Fixture
	Suggestion betting.Suggestion
	Error      string
}

func (r AnalysisResult) Failed() bool {
	return r.Error != ""
}

type AnalysisServiceConfig struct {
	// ParallelFetch loads both teams' statistics concurrently. The result is
	// identical to the sequential path.
	ParallelFetch bool
}

type AnalysisService struct {
	stats   *StatsService
	fetcher *FixtureFetcher
	cfg     AnalysisServiceConfig
	logger  *logging.Logger
}

func NewAnalysisService(stats *StatsService, fetcher *FixtureFetcher, cfg AnalysisServiceConfig, logger *logging.Logger) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		stats:   stats,
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
	}
}

// Analyze compares two teams. The only returned error is ErrInvalidInput;
// missing data is reported through AnalysisResult.Error.
func (s *AnalysisService) Analyze(ctx context.Context, team1ID, team2ID int64) (AnalysisResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Analyze",
		attribute.Int64("team1_id", team1ID),
		attribute.Int64("team2_id", team2ID),
	)
	defer span.End()

	if team1ID <= 0 || team2ID <= 0 {
		return AnalysisResult{}, fmt.Errorf("%w: team ids must be greater than zero (team1=%d team2=%d)", ErrInvalidInput, team1ID, team2ID)
	}

	stats1, ok1, stats2, ok2 := s.loadStatistics(ctx, team1ID, team2ID)
	if !ok1 || !ok2 {
		s.logger.WarnContext(ctx, "analysis skipped: missing team statistics",
			"team1_id", team1ID,
			"team2_id", team2ID,
			"team1_has_data", ok1,
			"team2_has_data", ok2,
		)
		markSpanDegraded(span, "missing team statistics", nil)
		return AnalysisResult{Error: ErrMsgInsufficientData}, nil
	}

	result := AnalysisResult{
		Team1ID: team1ID,
		Team2ID: team2ID,
		Stats1:  &stats1,
		Stats2:  &stats2,
	}
	result.HeadToHead = s.fetcher.HeadToHead(ctx, team1ID, team2ID)
	result.Suggestion = betting.Suggest(stats1, stats2)

	s.logger.InfoContext(ctx, "analysis completed",
		"team1_id", team1ID,
		"team2_id", team2ID,
		"head_to_head_count", len(result.HeadToHead),
		"suggestion", result.Suggestion.String(),
	)
	return result, nil
}

func (s *AnalysisService) loadStatistics(ctx context.Context, team1ID, team2ID int64) (teamstats.TeamStatistics, bool, teamstats.TeamStatistics, bool) {
	var (
		stats1, stats2 teamstats.TeamStatistics
		ok1, ok2       bool
	)

	if !s.cfg.ParallelFetch {
		stats1, ok1 = s.stats.TeamStatistics(ctx, team1ID)
		stats2, ok2 = s.stats.TeamStatistics(ctx, team2ID)
		return stats1, ok1, stats2, ok2
	}

	var wg conc.WaitGroup
	wg.Go(func() { stats1, ok1 = s.stats.TeamStatistics(ctx, team1ID) })
	wg.Go(func() { stats2, ok2 = s.stats.TeamStatistics(ctx, team2ID) })
	wg.Wait()
	return stats1, ok1, stats2, ok2
}
