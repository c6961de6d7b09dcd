package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsCrisisKeyword(t *testing.T) {
	assert.True(t, containsCrisisKeyword("I just want to DIE today"))
	assert.True(t, containsCrisisKeyword("feels like i should end it all"))
	assert.False(t, containsCrisisKeyword("today was rough but tomorrow will be better"))
	assert.False(t, containsCrisisKeyword(""))
}

func TestStreakMilestonesAreSparse(t *testing.T) {
	// Only the named milestones fire; an ordinary streak length does not.
	_, ok := streakMilestones[5]
	assert.False(t, ok)
	assert.Equal(t, "7-Day Streak", streakMilestones[7])
}
