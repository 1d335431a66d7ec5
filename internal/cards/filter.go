package cards

import "strings"

type FilterOptions struct {
	Kinds     []string `json:"kinds"`
	Icons     []string `json:"icons"`
	Tags      []string `json:"tags"`
	FreeWords string   `json:"free_words"`
	// SheetMode is "sheet" (deck count above 0), "list" (deck count 0) or "both".
	SheetMode string `json:"sheet_mode"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(strings.ToLower(h), strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

func Filter(cards []Card, opt FilterOptions) []Card {
	out := []Card{}
	for _, c := range cards {
		if opt.SheetMode == "sheet" && !c.InSheets() {
			continue
		}
		if opt.SheetMode == "list" && c.InSheets() {
			continue
		}
		if len(opt.Kinds) > 0 {
			matched := false
			for _, k := range opt.Kinds {
				if kind, ok := ParseKind(k); ok && kind == c.Kind {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Icons) > 0 && !containsAny(c.Icons, opt.Icons) {
			continue
		}
		if len(opt.Tags) > 0 && !containsAny(c.Tags, opt.Tags) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.Name), k) &&
					!strings.Contains(strings.ToLower(c.Text), k) &&
					!strings.Contains(strings.ToLower(c.TriggerLabel), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
