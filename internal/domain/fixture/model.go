package fixture

import (
	"strings"
	"time"
)

const (
	StatusFinished   = "FT"
	StatusNotStarted = "NS"
)

// Fixture is one historical or scheduled match as reported by the provider.
type Fixture struct {
	ID         int64
	Date       time.Time
	Status     string
	League     string
	Home       TeamRef
	Away       TeamRef
	Fulltime   Score
	Statistics []StatBlock
}

type TeamRef struct {
	ID   int64
	Name string
}

// Score holds fulltime goals. Nil sides mean the match has no result yet.
type Score struct {
	Home *int
	Away *int
}

// StatBlock carries per-team match statistics keyed by TeamID.
type StatBlock struct {
	TeamID      int64
	Corners     int
	YellowCards int
	RedCards    int
}

// Played reports whether both fulltime sides are known.
func (f Fixture) Played() bool {
	return f.Fulltime.Home != nil && f.Fulltime.Away != nil
}

// IsHome reports whether teamID played this fixture at home.
func (f Fixture) IsHome(teamID int64) bool {
	return f.Home.ID == teamID
}

// StatsFor returns the statistics block for teamID, or a zero-valued block
// tagged with teamID when the provider sent none.
func (f Fixture) StatsFor(teamID int64) StatBlock {
	for _, block := range f.Statistics {
		if block.TeamID == teamID {
			return block
		}
	}
	return StatBlock{TeamID: teamID}
}

// GoalsFor returns (scored, conceded) from teamID's perspective. ok is false
// when the fixture has no fulltime score.
func (f Fixture) GoalsFor(teamID int64) (scored int, conceded int, ok bool) {
	if !f.Played() {
		return 0, 0, false
	}
	if f.IsHome(teamID) {
		return *f.Fulltime.Home, *f.Fulltime.Away, true
	}
	return *f.Fulltime.Away, *f.Fulltime.Home, true
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
