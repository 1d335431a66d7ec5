package layout_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"

	"github.com/youruser/awayteam/internal/layout"
)

// fixedMetrics measures every rune as size pixels wide.
type fixedMetrics struct{ size int }

func (m fixedMetrics) Width(s string) int { return utf8.RuneCountInString(s) * m.size }
func (m fixedMetrics) Height() int        { return m.size * 2 }

type fixedSizer struct{}

func (fixedSizer) Metrics(size int) layout.Metrics { return fixedMetrics{size: size} }

type WrapTestSuite struct {
	suite.Suite
	m layout.Metrics
}

func TestWrapSuite(t *testing.T) {
	suite.Run(t, new(WrapTestSuite))
}

func (s *WrapTestSuite) SetupTest() {
	s.m = fixedMetrics{size: 10}
}

func (s *WrapTestSuite) TestWrap() {
	testCases := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "fits unsplit",
			text:     "AAAA BBBB",
			width:    90,
			expected: []string{"AAAA BBBB"},
		},
		{
			name:     "greedy split keeps separator",
			text:     "AAAA BBBB CCCC",
			width:    90,
			expected: []string{"AAAA BBBB ", "CCCC"},
		},
		{
			name:     "oversized word overflows on its own line",
			text:     "SUPERLONGWORD",
			width:    90,
			expected: []string{"SUPERLONGWORD"},
		},
		{
			name:     "oversized word between short ones",
			text:     "AB SUPERLONGWORD CD",
			width:    90,
			expected: []string{"AB ", "SUPERLONGWORD", "CD"},
		},
		{
			name:     "explicit newline breaks",
			text:     "AAAA\nBBBB",
			width:    90,
			expected: []string{"AAAA", "BBBB"},
		},
		{
			name:     "empty text",
			text:     "",
			width:    90,
			expected: []string{""},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, layout.Wrap(tc.text, s.m, tc.width))
		})
	}
}

func (s *WrapTestSuite) TestWrapLinesFitWidth() {
	lines := layout.Wrap("the quick brown fox jumps over the lazy dog", s.m, 120)
	s.Require().NotEmpty(lines)
	for _, line := range lines {
		s.LessOrEqual(s.m.Width(strings.TrimRight(line, " ")), 120, line)
	}
}

func (s *WrapTestSuite) TestWrapIdempotent() {
	texts := []string{
		"AAAA BBBB CCCC",
		"the quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh",
		"SUPERLONGWORD and friends",
	}
	for _, text := range texts {
		first := layout.Wrap(text, s.m, 90)

		var again []string
		for _, line := range first {
			again = append(again, layout.Wrap(line, s.m, 90)...)
		}
		s.Equal(first, again, text)

		s.Equal(first, layout.Wrap(strings.Join(first, "\n"), s.m, 90), text)
	}
}

func (s *WrapTestSuite) TestWrapLinesTruncates() {
	widths := []int{90, 90}
	lines := layout.WrapLines("AAAA BBBB CCCC DDDD EEEE FFFF", s.m, func(i int) int {
		if i >= len(widths) {
			return 0
		}
		return widths[i]
	})
	s.Equal([]string{"AAAA BBBB ", "CCCC DDDD "}, lines)
}

func (s *WrapTestSuite) TestWrapLinesShrinkingWidth() {
	lines := layout.WrapLines("AAAA BBBB CCCC DDDD", s.m, func(i int) int {
		return 90 - i*50
	})
	s.Equal([]string{"AAAA BBBB ", "CCCC "}, lines)
}

func (s *WrapTestSuite) TestWrapLinesZeroWidthFirstLine() {
	lines := layout.WrapLines("AAAA", s.m, func(int) int { return 0 })
	s.Empty(lines)
}

func (s *WrapTestSuite) TestWrapAboveReadingOrder() {
	// the line nearest the centre is widest
	width := func(i int) int {
		return []int{140, 90, 40, 0}[min(i, 3)]
	}
	lines := layout.WrapAbove("AAAA BBBB CCCC", s.m, width)
	s.Equal([]string{"AAAA BBBB CCCC"}, lines)

	lines = layout.WrapAbove("AAAA BBBB CCCC DDDD", s.m, width)
	s.Equal([]string{"AAAA BBBB ", "CCCC DDDD"}, lines)
}

func (s *WrapTestSuite) TestWrapAboveTruncates() {
	width := func(i int) int {
		if i > 0 {
			return 0
		}
		return 40
	}
	lines := layout.WrapAbove("AAAA BBBB", s.m, width)
	s.Equal([]string{"AAAA "}, lines)
}

func (s *WrapTestSuite) TestFitSize() {
	testCases := []struct {
		name     string
		text     string
		maxWidth int
		expected int
	}{
		{name: "fits at nominal", text: "ABC", maxWidth: 100, expected: 32},
		{name: "shrinks until it fits", text: "ABCDEFGHIJ", maxWidth: 200, expected: 20},
		{name: "stops at floor", text: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", maxWidth: 100, expected: 16},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			size := layout.FitSize(tc.text, fixedSizer{}, 32, 16, tc.maxWidth)
			s.Equal(tc.expected, size)
			if size > 16 {
				s.LessOrEqual(fixedSizer{}.Metrics(size).Width(tc.text), tc.maxWidth)
			}
			if size < 32 {
				s.Greater(fixedSizer{}.Metrics(size+1).Width(tc.text), tc.maxWidth)
			}
		})
	}
}
