package strip

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gray = lipgloss.Color("8")

func TestRebuild(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"ten pages", 10, 10},
		{"single page", 1, 1},
		{"zero pages", 0, 0},
		{"negative pages", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(1, 1)
			s.Rebuild(tt.n, gray)
			assert.Equal(t, tt.want, s.Len())
		})
	}
}

func TestRebuild_DiscardsPriorState(t *testing.T) {
	s := New(1, 1)
	s.Rebuild(3, gray)
	s.SetExpansion(1, 4)
	old := s.At(1)

	s.Rebuild(3, gray)

	assert.NotSame(t, old, s.At(1))
	assert.Equal(t, 0.0, s.Expansion(1))
	assert.Equal(t, 2, s.Width(1))
}

func TestAt_OutOfRange(t *testing.T) {
	s := New(1, 1)
	s.Rebuild(2, gray)

	assert.Nil(t, s.At(-1))
	assert.Nil(t, s.At(2))
	assert.Equal(t, 0, s.Width(5))
	assert.Equal(t, 0.0, s.Expansion(5))

	// Out of range writes are ignored.
	s.SetExpansion(7, 3)
}

func TestGeometry(t *testing.T) {
	s := New(1, 2)
	s.Rebuild(3, gray)

	assert.Equal(t, 2, s.DefaultWidth())
	// 3 dots * 2 cells + 2 gaps * 2 cells
	assert.Equal(t, 10, s.TotalWidth())

	s.SetExpansion(0, 4)
	assert.Equal(t, 6, s.Width(0))
	assert.Equal(t, 14, s.TotalWidth())

	s.SetSpacing(-1)
	assert.Equal(t, 0, s.Spacing())
	assert.Equal(t, 10, s.TotalWidth())
}

func TestTotalWidth_Empty(t *testing.T) {
	s := New(1, 4)
	assert.Equal(t, 0, s.TotalWidth())
	assert.Equal(t, "", s.Render(nil))
}

func TestSetColor(t *testing.T) {
	s := New(1, 1)
	s.Rebuild(2, gray)
	s.SetColor(lipgloss.Color("5"))

	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, lipgloss.Color("5"), s.At(i).Color())
	}
}

func TestRender(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := New(1, 1)
	s.Rebuild(3, gray)
	s.SetExpansion(1, 4)

	assert.Equal(t, "◖◗ ◖████◗ ◖◗", s.Render(nil))
	assert.Equal(t, s.TotalWidth(), lipgloss.Width(s.Render(nil)))
}

func TestRender_Mark(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := New(1, 0)
	s.Rebuild(2, gray)

	var marked []int
	out := s.Render(func(i int, rendered string) string {
		marked = append(marked, i)
		return fmt.Sprintf("%d%s", i, rendered)
	})

	assert.Equal(t, []int{0, 1}, marked)
	assert.Equal(t, "0◖◗1◖◗", out)
}

func TestRender_MultipleRows(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := New(2, 1)
	s.Rebuild(2, gray)

	rows := strings.Split(s.Render(nil), "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "◖██◗ ◖██◗", rows[0])
}
