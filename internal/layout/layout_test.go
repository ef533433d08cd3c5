package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFollowsWidth(t *testing.T) {
	q := NewQuery(0)

	q.SetWidth(120)
	assert.Equal(t, ModeWide, q.Mode())
	assert.False(t, q.IsMobile())
	assert.Equal(t, 2, q.PagesPerFlip())

	q.SetWidth(60)
	assert.Equal(t, ModeNarrow, q.Mode())
	assert.True(t, q.IsMobile())
	assert.Equal(t, 1, q.PagesPerFlip())
}

func TestCustomThreshold(t *testing.T) {
	q := NewQuery(50)
	q.SetWidth(60)
	assert.Equal(t, ModeWide, q.Mode())

	q.SetWidth(49)
	assert.Equal(t, ModeNarrow, q.Mode())
}
