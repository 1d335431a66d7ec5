package deck

import (
	"strconv"
	"strings"
)

// ExportDeckText lists every card as "Nx Name", in deck order. Cards with a deck count of 0
// are listed too.
func ExportDeckText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	for _, c := range d.Cards {
		lines = append(lines, strings.TrimSpace(strconv.Itoa(c.Count)+"x "+c.Name))
	}
	return strings.Join(lines, "\n") + "\n"
}
