package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_TeamStatistics(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	provider.
		On("FetchTeamFixtures", mock.Anything, int64(10)).
		Return([]fixture.Fixture{finished(10, 20, 2, 0), finished(30, 10, 1, 1)}, nil).
		Once()

	svc := NewStatsService(NewFixtureFetcher(provider, logging.NewNop()))
	stats, ok := svc.TeamStatistics(context.Background(), 10)

	require.True(t, ok)
	assert.Equal(t, 2, stats.TotalMatches)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1.5, stats.AvgScored)
	provider.AssertExpectations(t)
}

func TestStatsService_GetTeamStatistics_Errors(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	provider.
		On("FetchTeamFixtures", mock.Anything, int64(10)).
		Return(nil, errors.New("provider status=503")).
		Once()

	svc := NewStatsService(NewFixtureFetcher(provider, logging.NewNop()))

	_, err := svc.GetTeamStatistics(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetTeamStatistics(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInsufficientData)
	provider.AssertExpectations(t)
}
