package betting

import "github.com/riskibarqy/matchup-insight/internal/domain/teamstats"

// Suggestion is the categorical outcome of a head-to-head comparison.
type Suggestion string

const (
	SuggestionTeam1Win     Suggestion = "Team 1 win"
	SuggestionTeam2Win     Suggestion = "Team 2 win"
	SuggestionUndetermined Suggestion = "Draw/undetermined"
)

func (s Suggestion) String() string {
	return string(s)
}

// Suggest favors a team only when it has both more wins and a higher scoring
// average than the other. Ties and mixed signals resolve to undetermined.
func Suggest(team1, team2 teamstats.TeamStatistics) Suggestion {
	switch {
	case team1.Wins > team2.Wins && team1.AvgScored > team2.AvgScored:
		return SuggestionTeam1Win
	case team2.Wins > team1.Wins && team2.AvgScored > team1.AvgScored:
		return SuggestionTeam2Win
	default:
		return SuggestionUndetermined
	}
}
