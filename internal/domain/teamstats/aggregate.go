package teamstats

import (
	"math"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
)

type accumulator struct {
	matches     int
	scored      int
	conceded    int
	corners     int
	yellowCards int
	redCards    int
	wins        int
	draws       int
	losses      int
	goalsOver   [3]int
	cornersOver [3]int
}

// Aggregate folds fixtures into TeamStatistics from teamID's perspective.
// Fixtures without a fulltime score are skipped. ok is false when nothing
// could be aggregated.
func Aggregate(teamID int64, fixtures []fixture.Fixture) (TeamStatistics, bool) {
	var acc accumulator
	for _, item := range fixtures {
		acc.add(teamID, item)
	}
	if acc.matches == 0 {
		return TeamStatistics{}, false
	}
	return acc.summarize(), true
}

func (a *accumulator) add(teamID int64, item fixture.Fixture) {
	scored, conceded, ok := item.GoalsFor(teamID)
	if !ok {
		return
	}
	stats := item.StatsFor(teamID)

	a.matches++
	a.scored += scored
	a.conceded += conceded
	a.corners += stats.Corners
	a.yellowCards += stats.YellowCards
	a.redCards += stats.RedCards

	switch {
	case scored > conceded:
		a.wins++
	case scored == conceded:
		a.draws++
	default:
		a.losses++
	}

	totalGoals := float64(scored + conceded)
	for i, line := range goalLines() {
		if totalGoals > line {
			a.goalsOver[i]++
		}
	}
	corners := float64(stats.Corners)
	for i, line := range cornerLines() {
		if corners > line {
			a.cornersOver[i]++
		}
	}
}

func (a *accumulator) summarize() TeamStatistics {
	n := float64(a.matches)
	return TeamStatistics{
		AvgScored:         round(float64(a.scored)/n, 2),
		AvgConceded:       round(float64(a.conceded)/n, 2),
		Wins:              a.wins,
		Draws:             a.draws,
		Losses:            a.losses,
		AvgCorners:        round(float64(a.corners)/n, 2),
		AvgYellowCards:    round(float64(a.yellowCards)/n, 2),
		AvgRedCards:       round(float64(a.redCards)/n, 2),
		Over15Pct:         percentage(a.goalsOver[0], a.matches),
		Over25Pct:         percentage(a.goalsOver[1], a.matches),
		Over35Pct:         percentage(a.goalsOver[2], a.matches),
		CornersOver85Pct:  percentage(a.cornersOver[0], a.matches),
		CornersOver95Pct:  percentage(a.cornersOver[1], a.matches),
		CornersOver105Pct: percentage(a.cornersOver[2], a.matches),
		TotalMatches:      a.matches,
	}
}

func percentage(count, total int) float64 {
	return round(float64(count)/float64(total)*100, 1)
}

func round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
