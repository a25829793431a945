package httpapi

import (
	"bytes"
	"testing"
	"time"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/domain/teamstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_ResultPage(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	stats := teamstats.TeamStatistics{AvgScored: 1.5, Over25Pct: 66.7, CornersOver85Pct: 100, TotalMatches: 3}
	page := resultPage{
		Team1ID:    40,
		Team2ID:    50,
		Stats1:     &stats,
		Stats2:     &stats,
		HeadToHead: []fixture.Fixture{played(40, 50, 1, 1), {Home: fixture.TeamRef{Name: "<Home>"}}},
		Suggestion: "Draw/undetermined",
	}
	page.HeadToHead[0].Date = time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, templateResult, page))

	html := buf.String()
	assert.Contains(t, html, "Team 40")
	assert.Contains(t, html, "66.7%")
	assert.Contains(t, html, "100.0%")
	assert.Contains(t, html, "0.0%")
	assert.NotContains(t, html, ">100%")
	assert.Contains(t, html, "2023-10-07")
	assert.Contains(t, html, "1 - 1")
	assert.Contains(t, html, "&lt;Home&gt; -")
	assert.Contains(t, html, "Draw/undetermined")
}

func TestTemplateRenderer_ErrorPage(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, templateResult, resultPage{Error: "no data"}))
	assert.Contains(t, buf.String(), `<p class="error">no data</p>`)
	assert.NotContains(t, buf.String(), "Head to head")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	assert.Error(t, renderer.Render(&bytes.Buffer{}, "missing.html", nil))
}
