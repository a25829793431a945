package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchup-insight/internal/domain/betting"
	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalysisService(provider FixtureProvider, parallel bool) *AnalysisService {
	fetcher := NewFixtureFetcher(provider, nil)
	return NewAnalysisService(NewStatsService(fetcher), fetcher, AnalysisServiceConfig{ParallelFetch: parallel}, nil)
}

func TestAnalysisService_Analyze_FullResult(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		provider := &providerMock{}
		service := newAnalysisService(provider, parallel)

		h2h := []fixture.Fixture{finished(1, 2, 2, 1)}
		provider.On("FetchTeamFixtures", mock.Anything, int64(1)).
			Return([]fixture.Fixture{finished(1, 5, 3, 0), finished(6, 1, 1, 2), finished(1, 7, 2, 2)}, nil).Once()
		provider.On("FetchTeamFixtures", mock.Anything, int64(2)).
			Return([]fixture.Fixture{finished(2, 5, 0, 1), finished(6, 2, 1, 1), finished(2, 7, 1, 0)}, nil).Once()
		provider.On("FetchHeadToHead", mock.Anything, int64(1), int64(2)).Return(h2h, nil).Once()

		got, err := service.Analyze(context.Background(), 1, 2)
		require.NoError(t, err)
		provider.AssertExpectations(t)

		assert.False(t, got.Failed())
		assert.Equal(t, int64(1), got.Team1ID)
		assert.Equal(t, int64(2), got.Team2ID)
		require.NotNil(t, got.Stats1)
		require.NotNil(t, got.Stats2)
		assert.Equal(t, 2, got.Stats1.Wins)
		assert.Equal(t, 1, got.Stats2.Wins)
		assert.Equal(t, 2.33, got.Stats1.AvgScored)
		assert.Equal(t, 0.67, got.Stats2.AvgScored)
		assert.Equal(t, h2h, got.HeadToHead)
		assert.Equal(t, betting.SuggestionTeam1Win, got.Suggestion)
	}
}

func TestAnalysisService_Analyze_MissingStatsShortCircuits(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	service := newAnalysisService(provider, false)

	provider.On("FetchTeamFixtures", mock.Anything, int64(1)).
		Return([]fixture.Fixture{finished(1, 5, 3, 0)}, nil).Once()
	provider.On("FetchTeamFixtures", mock.Anything, int64(2)).
		Return(nil, errors.New("provider reported errors: token")).Once()

	got, err := service.Analyze(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, AnalysisResult{Error: ErrMsgInsufficientData}, got)
	provider.AssertNotCalled(t, "FetchHeadToHead", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_EmptyFixturesForFirstTeam(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	service := newAnalysisService(provider, true)

	provider.On("FetchTeamFixtures", mock.Anything, int64(1)).Return([]fixture.Fixture{}, nil).Once()
	provider.On("FetchTeamFixtures", mock.Anything, int64(2)).
		Return([]fixture.Fixture{finished(2, 5, 3, 0)}, nil).Once()

	got, err := service.Analyze(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, got.Failed())
	assert.Nil(t, got.Stats1)
	assert.Nil(t, got.HeadToHead)
	assert.Empty(t, got.Suggestion)
	provider.AssertNotCalled(t, "FetchHeadToHead", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_InvalidTeamIDs(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	service := newAnalysisService(provider, false)

	_, err := service.Analyze(context.Background(), 0, 2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	provider.AssertNotCalled(t, "FetchTeamFixtures", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_HeadToHeadFailureStillSuggests(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	service := newAnalysisService(provider, false)

	provider.On("FetchTeamFixtures", mock.Anything, int64(1)).
		Return([]fixture.Fixture{finished(1, 5, 1, 1)}, nil).Once()
	provider.On("FetchTeamFixtures", mock.Anything, int64(2)).
		Return([]fixture.Fixture{finished(2, 5, 1, 1)}, nil).Once()
	provider.On("FetchHeadToHead", mock.Anything, int64(1), int64(2)).
		Return(nil, errors.New("timeout")).Once()

	got, err := service.Analyze(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, got.Failed())
	assert.NotNil(t, got.HeadToHead)
	assert.Empty(t, got.HeadToHead)
	assert.Equal(t, betting.SuggestionUndetermined, got.Suggestion)
}

func TestStatsService_GetTeamStatistics(t *testing.T) {
	t.Parallel()

	provider := &providerMock{}
	service := NewStatsService(NewFixtureFetcher(provider, nil))

	_, err := service.GetTeamStatistics(context.Background(), -4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	provider.On("FetchTeamFixtures", mock.Anything, int64(9)).Return([]fixture.Fixture{}, nil).Once()
	_, err = service.GetTeamStatistics(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInsufficientData)

	provider.On("FetchTeamFixtures", mock.Anything, int64(10)).
		Return([]fixture.Fixture{finished(10, 3, 2, 0)}, nil).Once()
	stats, err := service.GetTeamStatistics(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMatches)
}
