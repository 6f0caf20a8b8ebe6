package service

import (
	"testing"

	"github.com/PranavThoppe/GameTracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPlayer(t *testing.T) {
	raw := &model.SleeperRawPlayer{
		FullName:         "Dak Prescott",
		FirstName:        "Dak",
		LastName:         "Prescott",
		Position:         "QB",
		Team:             "DAL",
		Status:           "Active",
		Active:           true,
		YearsExp:         9,
		Age:              32,
		College:          "Mississippi State",
		FantasyPositions: []string{"QB"},
		SearchRank:       40,
	}

	p := toPlayer("4034", raw)
	assert.Equal(t, "4034", p.ID)
	assert.Equal(t, "Dak Prescott", p.FullName)
	assert.Equal(t, "DAL", p.TeamAbbr)
	assert.True(t, p.Active)
	assert.JSONEq(t, `["QB"]`, string(p.FantasyPositions))
}

func TestToPlayer_FullNameFallback(t *testing.T) {
	p := toPlayer("9999", &model.SleeperRawPlayer{FirstName: "No", LastName: "Name"})
	assert.Equal(t, "No Name", p.FullName)
	require.Nil(t, p.FantasyPositions)
}
