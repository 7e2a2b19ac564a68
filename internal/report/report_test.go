package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() Report {
	g := NewGenerator(logging.NewMockLogger())
	g.now = func() time.Time { return time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC) }

	expenses := []models.Expense{
		{
			ID:          "a1",
			Amount:      decimal.RequireFromString("45.50"),
			Category:    models.CategoryGroceries,
			Description: "weekly shop",
			Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b2",
			Amount:      decimal.RequireFromString("12"),
			Category:    models.CategoryTransport,
			Description: "bus",
			Date:        time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}
	return g.Build(decimal.RequireFromString("200"), expenses)
}

func TestBuild(t *testing.T) {
	report := testReport()

	assert.Equal(t, "57.5", report.Total.String())
	assert.Equal(t, "142.5", report.Remaining.String())
	assert.Len(t, report.Expenses, 2)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestRender_Text(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Render(testReport(), FormatText)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Budget:    200.00")
	assert.Contains(t, text, "Spent:     57.50")
	assert.Contains(t, text, "Remaining: 142.50")
	assert.Contains(t, text, models.CategoryGroceries)
	assert.Contains(t, text, "weekly shop")
}

func TestRender_JSON(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Render(testReport(), FormatJSON)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "57.5", decoded.Total.String())
	require.Len(t, decoded.Expenses, 2)
	assert.Equal(t, "a1", decoded.Expenses[0].ID)
}

func TestRender_CSV(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Render(testReport(), FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per expense")
	assert.Contains(t, lines[0], "category")
	assert.Contains(t, lines[1], "45.5")
	assert.Contains(t, lines[2], "bus")
}

func TestRender_CSVEmptyLogStillHasHeader(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Render(g.Build(decimal.Zero, nil), FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	_, err := g.Render(testReport(), "xml")
	assert.Error(t, err)
}
