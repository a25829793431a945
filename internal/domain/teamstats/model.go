package teamstats

// TeamStatistics is the derived season summary for one team. Values are
// only produced by Aggregate; a zero TeamStatistics carries no meaning.
type TeamStatistics struct {
	AvgScored         float64 `json:"avg_scored"`
	AvgConceded       float64 `json:"avg_conceded"`
	Wins              int     `json:"wins"`
	Draws             int     `json:"draws"`
	Losses            int     `json:"losses"`
	AvgCorners        float64 `json:"avg_corners"`
	AvgYellowCards    float64 `json:"avg_yellow"`
	AvgRedCards       float64 `json:"avg_red"`
	Over15Pct         float64 `json:"over_1_5"`
	Over25Pct         float64 `json:"over_2_5"`
	Over35Pct         float64 `json:"over_3_5"`
	CornersOver85Pct  float64 `json:"corners_over_8_5"`
	CornersOver95Pct  float64 `json:"corners_over_9_5"`
	CornersOver105Pct float64 `json:"corners_over_10_5"`
	TotalMatches      int     `json:"total_matches"`
}

// Goal lines apply to the match total, corner lines to the team's own count.
const (
	GoalLineOver15    = 1.5
	GoalLineOver25    = 2.5
	GoalLineOver35    = 3.5
	CornerLineOver85  = 8.5
	CornerLineOver95  = 9.5
	CornerLineOver105 = 10.5
)

func goalLines() [3]float64 {
	return [3]float64{GoalLineOver15, GoalLineOver25, GoalLineOver35}
}

func cornerLines() [3]float64 {
	return [3]float64{CornerLineOver85, CornerLineOver95, CornerLineOver105}
}
