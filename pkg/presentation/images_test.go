package presentation

import (
	"testing"

	"github.com/revsys/dic/pkg/cleaner"
	"github.com/revsys/dic/pkg/commands"
	"github.com/revsys/dic/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestMatchLine(t *testing.T) {
	latest := &commands.Image{ID: "a1", Tags: []string{"app:latest"}, Size: 1000000}
	old := &commands.Image{ID: "a2", Tags: []string{"app:old"}, Size: 2000000}

	type scenario struct {
		match    cleaner.Match
		expected string
	}

	scenarios := []scenario{
		{cleaner.Match{Image: latest, Tag: "app:latest"}, "  - app:latest 1 MB"},
		{cleaner.Match{Image: old, Tag: "app:old"}, "  - app:old 2 MB"},
		{cleaner.Match{Image: &commands.Image{Size: 0}, Tag: "x"}, "  - x 0 B"},
	}

	theme := utils.Theme{utils.StyleMatch: {"cyan"}}
	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, MatchLine(s.match, utils.Theme{}))
		assert.EqualValues(t, s.expected, utils.Decolorise(MatchLine(s.match, theme)))
	}
}

func TestCandidateTable(t *testing.T) {
	images := []*commands.Image{
		{ID: "sha256:bbbbbbbbbbbbbbbbbbbb", Tags: []string{"web:1", "web:latest"}, Size: 72800000},
		{ID: "sha256:aaaaaaaaaaaaaaaaaaaa", Tags: []string{"app:old"}, Size: 999},
	}

	table, err := CandidateTable(images)
	assert.NoError(t, err)
	assert.EqualValues(t,
		"bbbbbbbbbbbb web:1,web:latest 73 MB\n"+
			"aaaaaaaaaaaa app:old          999 B",
		table,
	)

	table, err = CandidateTable(nil)
	assert.NoError(t, err)
	assert.Empty(t, table)
}
