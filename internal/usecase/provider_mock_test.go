package usecase

import (
	"context"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type providerMock struct {
	mock.Mock
}

func (m *providerMock) FetchTeamFixtures(ctx context.Context, teamID int64) ([]fixture.Fixture, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]fixture.Fixture)
	return items, args.Error(1)
}

func (m *providerMock) FetchHeadToHead(ctx context.Context, team1ID, team2ID int64) ([]fixture.Fixture, error) {
	args := m.Called(ctx, team1ID, team2ID)
	items, _ := args.Get(0).([]fixture.Fixture)
	return items, args.Error(1)
}

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

func finished(homeID, awayID int64, homeGoals, awayGoals int) fixture.Fixture {
	h, a := homeGoals, awayGoals
	return fixture.Fixture{
		Home:     fixture.TeamRef{ID: homeID},
		Away:     fixture.TeamRef{ID: awayID},
		Status:   fixture.StatusFinished,
		Fulltime: fixture.Score{Home: &h, Away: &a},
	}
}
