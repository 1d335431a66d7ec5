package layout

import "strings"

// Metrics measures text for one font at one size.
type Metrics interface {
	// Width is the rendered advance of s in pixels.
	Width(s string) int
	// Height is the line height in pixels, the same for every string.
	Height() int
}

// Sizer hands out Metrics for a font at a given pixel size.
type Sizer interface {
	Metrics(size int) Metrics
}

// measure ignores trailing spaces so that a wrapped line measures the same whether or not
// it still carries the separator that followed its last word.
func measure(m Metrics, s string) int {
	return m.Width(strings.TrimRight(s, " "))
}

// Wrap splits text into lines no wider than maxWidth. Words are only broken at spaces; a
// word wider than maxWidth gets a line of its own and overflows. Every line but the last
// keeps the space that followed its last word. Explicit newlines always break.
func Wrap(text string, m Metrics, maxWidth int) []string {
	return WrapLines(text, m, func(int) int { return maxWidth })
}

// WrapLines is Wrap with a width that depends on the line index. Once width(i) is zero or
// negative no more lines are produced and the rest of the text is dropped.
func WrapLines(text string, m Metrics, width func(i int) int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		more := wrapParagraph(para, m, width, &lines)
		if !more {
			break
		}
	}
	return lines
}

// wrapParagraph appends the lines of one paragraph to *lines. It reports false when the
// width function ran out.
func wrapParagraph(text string, m Metrics, width func(int) int, lines *[]string) bool {
	limit := width(len(*lines))
	if limit <= 0 {
		return false
	}
	if measure(m, text) <= limit {
		*lines = append(*lines, text)
		return true
	}

	words := strings.Fields(text)
	i := 0
	for i < len(words) {
		limit = width(len(*lines))
		if limit <= 0 {
			return false
		}
		line := ""
		for i < len(words) && measure(m, line+words[i]) <= limit {
			line += words[i] + " "
			i++
		}
		if line == "" {
			line = words[i]
			i++
		}
		if i == len(words) {
			line = strings.TrimRight(line, " ")
		}
		*lines = append(*lines, line)
	}
	return true
}

// WrapAbove lays out text on lines stacked upwards from a centre line, where line i counted
// from the centre may be at most width(i) wide. The result is in reading order, so the last
// line is the one nearest the centre. The smallest stack the text fits in is used; if it fits
// in none, the tallest stack is returned truncated.
func WrapAbove(text string, m Metrics, width func(i int) int) []string {
	capacity := 0
	for width(capacity) > 0 {
		capacity++
	}
	if capacity == 0 {
		return nil
	}

	var lines []string
	for n := 1; n <= capacity; n++ {
		stack := n
		lines = WrapLines(text, m, func(i int) int {
			if i >= stack {
				return 0
			}
			return width(stack - 1 - i)
		})
		if fits(text, lines) {
			return lines
		}
	}
	return lines
}

// fits reports whether lines carry every word of text.
func fits(text string, lines []string) bool {
	return len(strings.Fields(strings.Join(lines, " "))) == len(strings.Fields(text))
}

// FitSize returns the largest size from nominal down to floor at which text is no wider
// than maxWidth. If even floor is too wide, floor is returned.
func FitSize(text string, sizer Sizer, nominal, floor, maxWidth int) int {
	if floor > nominal {
		floor = nominal
	}
	size := nominal
	for size > floor && sizer.Metrics(size).Width(text) > maxWidth {
		size--
	}
	return size
}
