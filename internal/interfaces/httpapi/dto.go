package httpapi

import (
	"time"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-insight/internal/usecase"
)

type indexPage struct {
	Season int
}

type resultPage struct {
	Error      string
	Team1ID    int64
	Team2ID    int64
	Stats1     *teamstats.TeamStatistics
	Stats2     *teamstats.TeamStatistics
	HeadToHead []fixture.Fixture
	Suggestion string
}

func newResultPage(result usecase.AnalysisResult) resultPage {
	if result.Failed() {
		return resultPage{Error: result.Error}
	}
	return resultPage{
		Team1ID:    result.Team1ID,
		Team2ID:    result.Team2ID,
		Stats1:     result.Stats1,
		Stats2:     result.Stats2,
		HeadToHead: result.HeadToHead,
		Suggestion: result.Suggestion.String(),
	}
}

type analysisDTO struct {
	Team1ID    int64                     `json:"team1_id"`
	Team2ID    int64                     `json:"team2_id"`
	Stats1     *teamstats.TeamStatistics `json:"stats1"`
	Stats2     *teamstats.TeamStatistics `json:"stats2"`
	HeadToHead []fixtureDTO              `json:"h2h"`
	Suggestion string                    `json:"bet_suggestion"`
}

type fixtureDTO struct {
	ID       int64      `json:"id"`
	Date     *time.Time `json:"date,omitempty"`
	Status   string     `json:"status"`
	League   string     `json:"league,omitempty"`
	HomeID   int64      `json:"home_team_id"`
	HomeName string     `json:"home_team_name"`
	AwayID   int64      `json:"away_team_id"`
	AwayName string     `json:"away_team_name"`
	HomeGoal *int       `json:"home_goals"`
	AwayGoal *int       `json:"away_goals"`
}

type teamStatisticsDTO struct {
	TeamID int64 `json:"team_id"`
	Season int   `json:"season"`
	teamstats.TeamStatistics
}

func analysisToDTO(result usecase.AnalysisResult) analysisDTO {
	h2h := make([]fixtureDTO, 0, len(result.HeadToHead))
	for _, item := range result.HeadToHead {
		h2h = append(h2h, fixtureToDTO(item))
	}
	return analysisDTO{
		Team1ID:    result.Team1ID,
		Team2ID:    result.Team2ID,
		Stats1:     result.Stats1,
		Stats2:     result.Stats2,
		HeadToHead: h2h,
		Suggestion: result.Suggestion.String(),
	}
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	out := fixtureDTO{
		ID:       item.ID,
		Status:   item.Status,
		League:   item.League,
		HomeID:   item.Home.ID,
		HomeName: item.Home.Name,
		AwayID:   item.Away.ID,
		AwayName: item.Away.Name,
		HomeGoal: item.Fulltime.Home,
		AwayGoal: item.Fulltime.Away,
	}
	if !item.Date.IsZero() {
		date := item.Date
		out.Date = &date
	}
	return out
}
