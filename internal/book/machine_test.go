package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineStartsClosed(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StateClosed, m.Current())
	assert.True(t, m.IsClosed())
	assert.False(t, m.IsOpened())
	assert.False(t, m.IsBusy())
}

func TestMachineLegalLifecycle(t *testing.T) {
	m := NewMachine()

	require.True(t, m.TransitionTo(StateOpening))
	assert.True(t, m.IsBusy())

	require.True(t, m.TransitionTo(StateOpened))
	assert.True(t, m.IsOpened())
	assert.False(t, m.IsBusy())

	require.True(t, m.TransitionTo(StateFlipping))
	assert.True(t, m.IsBusy())

	require.True(t, m.TransitionTo(StateOpened))

	require.True(t, m.TransitionTo(StateClosing))
	assert.True(t, m.IsBusy())

	require.True(t, m.TransitionTo(StateClosed))
	assert.True(t, m.IsClosed())
}

func TestMachineIllegalTransitionLeavesStateUnchanged(t *testing.T) {
	cases := []struct {
		name      string
		from      State
		requested State
	}{
		{"closed to opened", StateClosed, StateOpened},
		{"closed to flipping", StateClosed, StateFlipping},
		{"closed to closing", StateClosed, StateClosing},
		{"opening to flipping", StateOpening, StateFlipping},
		{"opened to closed", StateOpened, StateClosed},
		{"opened to opening", StateOpened, StateOpening},
		{"flipping to closed", StateFlipping, StateClosed},
		{"flipping to closing", StateFlipping, StateClosing},
		{"closing to opened", StateClosing, StateOpened},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine()
			m.ForceTransitionTo(tc.from)

			assert.False(t, m.TransitionTo(tc.requested))
			assert.Equal(t, tc.from, m.Current())
		})
	}
}

func TestMachineSelfTransitionIsIllegal(t *testing.T) {
	m := NewMachine()
	m.ForceTransitionTo(StateOpened)
	assert.False(t, m.TransitionTo(StateOpened))
}

func TestForceTransitionAlwaysSucceeds(t *testing.T) {
	m := NewMachine()
	m.ForceTransitionTo(StateFlipping)
	assert.Equal(t, StateFlipping, m.Current())

	// Recovery path: flipping forced straight back to opened
	m.ForceTransitionTo(StateOpened)
	assert.Equal(t, StateOpened, m.Current())
}

func TestChapterAt(t *testing.T) {
	n := NewNavState([]int{0, 51, 100})

	assert.Equal(t, 0, n.ChapterAt(0))
	assert.Equal(t, 0, n.ChapterAt(50))
	assert.Equal(t, 1, n.ChapterAt(51))
	assert.Equal(t, 1, n.ChapterAt(99))
	assert.Equal(t, 2, n.ChapterAt(100))
	assert.Equal(t, 2, n.ChapterAt(500))
}

func TestChapterAtEmptyTable(t *testing.T) {
	n := NewNavState(nil)
	assert.Equal(t, 0, n.ChapterAt(42))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ClampIndex(-10, 100))
	assert.Equal(t, 100, ClampIndex(150, 100))
	assert.Equal(t, 42, ClampIndex(42, 100))
	assert.Equal(t, 0, ClampIndex(0, 0))
}
