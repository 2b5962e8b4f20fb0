package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCannotPlay(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"OUT", "out", " IR ", "PUP", "Suspended", "DOUBTFUL", "NA"} {
		assert.True(t, StatusCannotPlay(status), status)
	}
	for _, status := range []string{"", "QUESTIONABLE", "PROBABLE", "ACTIVE"} {
		assert.False(t, StatusCannotPlay(status), status)
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(7,
		[]Injury{{PlayerID: "p1", Status: "out"}, {PlayerID: "p2", Status: "QUESTIONABLE"}},
		[]Bye{{PlayerID: "p3", Week: 7}, {PlayerID: "p4", Week: 9}},
	)

	status, ok := snap.InjuryStatus("p1")
	assert.True(t, ok)
	assert.Equal(t, "OUT", status)

	assert.False(t, snap.Playable("p1"))
	assert.True(t, snap.Playable("p2"))
	assert.True(t, snap.OnBye("p3"))
	assert.False(t, snap.Playable("p3"))
	assert.True(t, snap.Playable("p4"))
	assert.True(t, snap.Playable("unknown"))
	assert.Equal(t, 7, snap.Week())
}
