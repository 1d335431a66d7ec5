package tts_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/deck"
	"github.com/youruser/awayteam/internal/tts"
)

func fixedClock() time.Time { return time.Unix(1700000000, 0) }

func TestExporterURL(t *testing.T) {
	e := &tts.Exporter{FaceURL: "https://example.com/generated/{deck}.png?{cache}", Now: fixedClock}
	assert.Equal(t, "https://example.com/generated/element10.png?1700000000", e.URL("element10"))
}

func TestDeckCardIDsAndCopies(t *testing.T) {
	cs := make([]cards.Card, 72)
	for i := range cs {
		cs[i] = cards.Card{Name: fmt.Sprintf("c%d", i), Count: 1}
	}
	cs[0].Count = 3
	cs[0].Tags = []string{"negative"}
	cs[71].Count = 0

	d := deck.Deck{Definition: deck.Definition{Name: "reward", Description: "Bonuses"}, Cards: cs}
	e := &tts.Exporter{FaceURL: "{deck}.png?{cache}", Now: fixedClock}
	out := e.Deck(d, d.Subdecks(10), "back.png")

	assert.Equal(t, "DeckCustom", out.Name)
	assert.Equal(t, "reward", out.Nickname)
	assert.Equal(t, tts.BaseTransform(), out.Transform)

	require.Len(t, out.DeckIDs, 73)
	assert.Equal(t, []int{1000, 1000, 1000, 1001}, out.DeckIDs[:4])
	assert.Equal(t, 1068, out.DeckIDs[70])
	assert.Equal(t, []int{1100, 1101}, out.DeckIDs[71:])

	seen := map[int]string{}
	for _, c := range out.ContainedObjects {
		if name, ok := seen[c.CardID]; ok {
			assert.Equal(t, name, c.Nickname, "card ID %d reused", c.CardID)
		}
		seen[c.CardID] = c.Nickname
	}
	assert.Len(t, seen, 71)
	assert.Equal(t, []string{"negative"}, out.ContainedObjects[0].Tags)
	assert.True(t, out.ContainedObjects[0].Hands)

	require.Len(t, out.CustomDeck, 2)
	assert.Equal(t, tts.SubDeck{FaceURL: "reward10.png?1700000000", BackURL: "back.png", NumWidth: 10, NumHeight: 7}, out.CustomDeck["10"])
	assert.Equal(t, tts.SubDeck{FaceURL: "reward11.png?1700000000", BackURL: "back.png", NumWidth: 10, NumHeight: 1}, out.CustomDeck["11"])
}

func TestCollectionSpacesDecks(t *testing.T) {
	c := tts.NewCollection(tts.Deck{Transform: tts.BaseTransform()}, tts.Deck{Transform: tts.BaseTransform()}, tts.Deck{Transform: tts.BaseTransform()})
	assert.Equal(t, 0.0, c.ObjectStates[0].Transform.PosX)
	assert.Equal(t, 5.0, c.ObjectStates[2].Transform.PosX)

	b, err := c.MarshalIndent()
	require.NoError(t, err)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw["ObjectStates"], 3)
	transform := raw["ObjectStates"][1]["Transform"].(map[string]any)
	assert.Equal(t, 2.5, transform["posX"])
	assert.Equal(t, 180.0, transform["rotY"])
}
