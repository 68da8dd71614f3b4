package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineLifecycle(t *testing.T) {
	var l Line
	assert.False(t, l.Visible())

	l.Push('x')
	assert.Equal(t, "", l.Text(), "push on a closed line")

	l.Open()
	assert.True(t, l.Visible())
	for _, r := range "42" {
		l.Push(r)
	}
	assert.Equal(t, "42", l.Text())

	l.Pop()
	assert.Equal(t, "4", l.Text())

	text, ok := l.Submit()
	assert.True(t, ok)
	assert.Equal(t, "4", text)
	assert.False(t, l.Visible())
	assert.Equal(t, "", l.Text())
}

func TestPopEmptyCloses(t *testing.T) {
	var l Line
	l.Open()
	l.Push('q')
	l.Pop()
	assert.True(t, l.Visible())
	l.Pop()
	assert.False(t, l.Visible())
}

func TestSubmitBlank(t *testing.T) {
	var l Line
	_, ok := l.Submit()
	assert.False(t, ok, "closed line")

	l.Open()
	l.Push(' ')
	_, ok = l.Submit()
	assert.False(t, ok)
	assert.False(t, l.Visible())
}

func TestReopenClearsText(t *testing.T) {
	var l Line
	l.Open()
	l.Push('a')
	l.Close()
	l.Open()
	assert.Equal(t, "", l.Text())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"q", Command{Kind: Quit}},
		{"quit", Command{Kind: Quit}},
		{"top", Command{Kind: Top}},
		{"bottom", Command{Kind: Bottom}},
		{"$", Command{Kind: Bottom}},
		{"1", Command{Kind: GoToLine, Line: 0}},
		{"120", Command{Kind: GoToLine, Line: 119}},
		{"0", Command{Kind: GoToLine, Line: 0}},
		{"-4", Command{Kind: GoToLine, Line: 0}},
		{"wq", Command{Kind: Unknown}},
		{"12a", Command{Kind: Unknown}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), tt.in)
	}
}
