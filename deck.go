package spacedeck

import (
	"fmt"
	"io/ioutil"

	"github.com/gobuffalo/packr/v2"
	"gopkg.in/yaml.v2"
)

const defaultDeckFile = "workshop.yaml"

var deckBox = packr.New("decks", "./decks")

type deckFile struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// ParseDeck decodes a YAML deck description.
func ParseDeck(in []byte) (*Deck, error) {
	var f deckFile
	if err := yaml.UnmarshalStrict(in, &f); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return NewDeck(f.Title, f.Slides)
}

func LoadDeck(path string) (*Deck, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := ParseDeck(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// DefaultDeck returns the bundled workshop deck.
func DefaultDeck() (*Deck, error) {
	buf, err := deckBox.Find(defaultDeckFile)
	if err != nil {
		return nil, err
	}
	return ParseDeck(buf)
}

// OpenDeck loads the deck at path, or the bundled deck when path is empty.
func OpenDeck(path string) (*Deck, error) {
	if path == "" {
		return DefaultDeck()
	}
	return LoadDeck(path)
}
