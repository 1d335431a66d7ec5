// Package tts builds the saved-object JSON a virtual tabletop loads decks from.
package tts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/youruser/awayteam/internal/deck"
)

// DeckSpacing is the distance between neighbouring decks on the table.
const DeckSpacing = 2.5

type Transform struct {
	PosX   float64 `json:"posX"`
	PosY   float64 `json:"posY"`
	PosZ   float64 `json:"posZ"`
	RotX   float64 `json:"rotX"`
	RotY   float64 `json:"rotY"`
	RotZ   float64 `json:"rotZ"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
	ScaleZ float64 `json:"scaleZ"`
}

// BaseTransform is face down at the origin.
func BaseTransform() Transform {
	return Transform{RotY: 180, RotZ: 180, ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

type Collection struct {
	ObjectStates []Deck `json:"ObjectStates"`
}

type Deck struct {
	Name             string             `json:"Name"`
	Transform        Transform          `json:"Transform"`
	DeckIDs          []int              `json:"DeckIDs"`
	Nickname         string             `json:"Nickname"`
	Description      string             `json:"Description"`
	Hands            bool               `json:"Hands"`
	SidewaysCard     bool               `json:"SidewaysCard"`
	CustomDeck       map[string]SubDeck `json:"CustomDeck"`
	ContainedObjects []Card             `json:"ContainedObjects"`
}

type SubDeck struct {
	FaceURL      string `json:"FaceURL"`
	BackURL      string `json:"BackURL"`
	NumWidth     int    `json:"NumWidth"`
	NumHeight    int    `json:"NumHeight"`
	BackIsHidden bool   `json:"BackIsHidden"`
	UniqueBack   bool   `json:"UniqueBack"`
	Type         int    `json:"Type"`
}

type Card struct {
	Name         string    `json:"Name"`
	Transform    Transform `json:"Transform"`
	Nickname     string    `json:"Nickname"`
	Description  string    `json:"Description"`
	CardID       int       `json:"CardID"`
	Tags         []string  `json:"Tags,omitempty"`
	Hands        bool      `json:"Hands"`
	SidewaysCard bool      `json:"SidewaysCard"`
}

// Exporter turns decks into tabletop objects. FaceURL is a format with {deck} standing for
// a sheet's file stem and {cache} for a cache-busting timestamp.
type Exporter struct {
	FaceURL string
	Now     func() time.Time
}

func NewExporter(faceURL string) *Exporter {
	return &Exporter{FaceURL: faceURL, Now: time.Now}
}

// URL fills in the face URL format for the file stem name.
func (e *Exporter) URL(name string) string {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return strings.NewReplacer(
		"{deck}", name,
		"{cache}", strconv.FormatInt(now().Unix(), 10),
	).Replace(e.FaceURL)
}

// Deck converts d, already split into subs, using backURL for every card back. Each copy
// of a card is listed separately, all sharing the card's ID.
func (e *Exporter) Deck(d deck.Deck, subs []deck.Subdeck, backURL string) Deck {
	out := Deck{
		Name:             "DeckCustom",
		Transform:        BaseTransform(),
		DeckIDs:          []int{},
		Nickname:         d.Name,
		Description:      d.Description,
		CustomDeck:       map[string]SubDeck{},
		ContainedObjects: []Card{},
	}

	for _, s := range subs {
		for i, c := range s.Cards {
			card := Card{
				Name:        "Card",
				Transform:   BaseTransform(),
				Nickname:    c.Name,
				Description: c.Text,
				CardID:      s.CardID(i),
				Tags:        c.Tags,
				Hands:       true,
			}
			for k := 0; k < c.Count; k++ {
				out.DeckIDs = append(out.DeckIDs, card.CardID)
				out.ContainedObjects = append(out.ContainedObjects, card)
			}
		}
		out.CustomDeck[strconv.Itoa(s.Index)] = SubDeck{
			FaceURL:   e.URL(d.SheetName(s)),
			BackURL:   backURL,
			NumWidth:  s.Columns,
			NumHeight: s.Rows,
		}
	}
	return out
}

// NewCollection lays decks out in a row along X.
func NewCollection(decks ...Deck) Collection {
	for i := range decks {
		decks[i].Transform.PosX = float64(i) * DeckSpacing
	}
	return Collection{ObjectStates: decks}
}

func (c Collection) MarshalIndent() ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return b, nil
}
