package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOrdering(t *testing.T) {
	query := "morning"

	exact := Score(query, "morning", "some unrelated text")
	substring := Score(query, "my morning routine", "some unrelated text")
	contentOnly := Score(query, "daily log", "went for a morning run")

	assert.GreaterOrEqual(t, exact, substring)
	assert.GreaterOrEqual(t, substring, contentOnly)
	assert.Greater(t, contentOnly, 0.0)
}

func TestScoreRange(t *testing.T) {
	cases := []struct {
		query   string
		title   string
		content string
	}{
		{"morning", "morning", "morning morning morning morning morning morning morning morning morning morning"},
		{"morning", "my morning routine", "woke up early"},
		{"tea", "coffee", "no match at all"},
		{"", "anything", "anything"},
		{"día", "Un buen día", "hoy fue un buen día, muy buen día"},
	}

	for _, c := range cases {
		got := Score(c.query, c.title, c.content)
		assert.GreaterOrEqual(t, got, 0.0, "query=%q title=%q", c.query, c.title)
		assert.LessOrEqual(t, got, 1.0, "query=%q title=%q", c.query, c.title)
	}
}

func TestScoreNoMatch(t *testing.T) {
	assert.Equal(t, 0.0, Score("tea", "coffee log", "all about coffee"))
	assert.Equal(t, 0.0, Score("", "title", "content"))
}

func TestScoreCaseInsensitive(t *testing.T) {
	upper := Score("MORNING", "Morning Pages", "MORNING thoughts")
	lower := Score("morning", "morning pages", "morning thoughts")
	assert.Equal(t, lower, upper)
}

func TestScoreOccurrenceBonusCapped(t *testing.T) {
	few := Score("run", "", "run")
	many := Score("run", "", "run run run run run run run run run run run run")

	assert.Greater(t, many, few)
	assert.LessOrEqual(t, many, 0.4+0.3)
}
