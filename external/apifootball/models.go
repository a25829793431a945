package apifootball

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
)

type fixturesEnvelope struct {
	Errors   any           `json:"errors"`
	Results  int           `json:"results"`
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home teamItem `json:"home"`
		Away teamItem `json:"away"`
	} `json:"teams"`
	Score struct {
		Fulltime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fulltime"`
	} `json:"score"`
	Statistics []statisticsItem `json:"statistics"`
}

type teamItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// statisticsItem accepts both the flat per-team counters and the typed
// list returned by /fixtures/statistics.
type statisticsItem struct {
	Team        teamItem    `json:"team"`
	Corners     any         `json:"corners"`
	YellowCards any         `json:"yellow_cards"`
	RedCards    any         `json:"red_cards"`
	Statistics  []typedStat `json:"statistics"`
}

type typedStat struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

const (
	statTypeCorners     = "corner kicks"
	statTypeYellowCards = "yellow cards"
	statTypeRedCards    = "red cards"
)

func mapFixtures(items []fixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, mapFixture(item))
	}
	return out
}

func mapFixture(item fixtureItem) fixture.Fixture {
	f := fixture.Fixture{
		ID:     item.Fixture.ID,
		Status: fixture.NormalizeStatus(item.Fixture.Status.Short),
		League: strings.TrimSpace(item.League.Name),
		Home:   fixture.TeamRef{ID: item.Teams.Home.ID, Name: strings.TrimSpace(item.Teams.Home.Name)},
		Away:   fixture.TeamRef{ID: item.Teams.Away.ID, Name: strings.TrimSpace(item.Teams.Away.Name)},
		Fulltime: fixture.Score{
			Home: item.Score.Fulltime.Home,
			Away: item.Score.Fulltime.Away,
		},
	}
	if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(item.Fixture.Date)); err == nil {
		f.Date = ts.UTC()
	}

	if len(item.Statistics) > 0 {
		f.Statistics = make([]fixture.StatBlock, 0, len(item.Statistics))
		for _, stat := range item.Statistics {
			f.Statistics = append(f.Statistics, mapStatBlock(stat))
		}
	}
	return f
}

func mapStatBlock(item statisticsItem) fixture.StatBlock {
	block := fixture.StatBlock{
		TeamID:      item.Team.ID,
		Corners:     asInt(item.Corners),
		YellowCards: asInt(item.YellowCards),
		RedCards:    asInt(item.RedCards),
	}
	for _, stat := range item.Statistics {
		switch strings.ToLower(strings.TrimSpace(stat.Type)) {
		case statTypeCorners:
			block.Corners = asInt(stat.Value)
		case statTypeYellowCards:
			block.YellowCards = asInt(stat.Value)
		case statTypeRedCards:
			block.RedCards = asInt(stat.Value)
		}
	}
	return block
}

// asInt reads provider counters that may arrive as numbers, numeric strings
// or null. Anything unreadable counts as zero.
func asInt(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(v)))
		if err != nil {
			return 0
		}
		return n
	}
}

// providerErrorMessages flattens the envelope errors field. The provider
// sends [] when there are none, and an object keyed by field otherwise.
func providerErrorMessages(raw any) []string {
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			out = append(out, fmt.Sprintf("%s: %v", key, v[key]))
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case bool:
		if !v {
			return nil
		}
		return []string{"provider flagged an error"}
	case float64:
		if v == 0 {
			return nil
		}
		return []string{fmt.Sprintf("provider error code %v", v)}
	default:
		return nil
	}
}
