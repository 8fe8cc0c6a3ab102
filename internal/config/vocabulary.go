// Package config loads the static vocabulary tables injected into the
// schedule parsers and the runtime settings read from the environment.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// EventConfig is the YAML form of a special event.
type EventConfig struct {
	Region    string `yaml:"region"`
	Month     int    `yaml:"month"`
	Name      string `yaml:"name"`
	Address   string `yaml:"address"`
	StartDay  int    `yaml:"start_day"`
	EndDay    int    `yaml:"end_day"`
	AnchorDay int    `yaml:"anchor_day"`
	StartTime string `yaml:"start_time"`
}

// Vocabulary holds the word tables used by the parsers.
type Vocabulary struct {
	Numerals      map[string]int `yaml:"numerals"`
	Ordinals      map[string]int `yaml:"ordinals"`
	Seasons       map[string]int `yaml:"seasons"`
	Synonyms      [][]string     `yaml:"synonyms"`
	AvoidKeywords []string       `yaml:"avoid_keywords"`
	Activities    []string       `yaml:"activities"`
	Events        []EventConfig  `yaml:"events"`
}

// DefaultVocabulary returns the embedded vocabulary.
func DefaultVocabulary() Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", err))
	}
	return v
}

// LoadVocabulary reads a vocabulary file. An empty path returns the default.
func LoadVocabulary(path string) (Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("reading vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates a YAML vocabulary document.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parsing vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

func (v Vocabulary) Validate() error {
	for word, n := range v.Numerals {
		if n <= 0 {
			return fmt.Errorf("numeral %q must be positive, got %d", word, n)
		}
	}
	for word, n := range v.Ordinals {
		if n <= 0 || n > domain.MaxTripDays {
			return fmt.Errorf("ordinal %q must be in 1..%d, got %d", word, domain.MaxTripDays, n)
		}
	}
	for word, m := range v.Seasons {
		if m < 1 || m > 12 {
			return fmt.Errorf("season %q has invalid month %d", word, m)
		}
	}
	for i, e := range v.Events {
		if e.Name == "" || e.Region == "" {
			return fmt.Errorf("event %d: name and region are required", i)
		}
		if e.Month < 1 || e.Month > 12 {
			return fmt.Errorf("event %q: invalid month %d", e.Name, e.Month)
		}
		if e.AnchorDay < 0 || e.AnchorDay > 28 {
			return fmt.Errorf("event %q: anchor_day must be in 0..28", e.Name)
		}
	}
	return nil
}

// SpecialEvents converts the event table into domain events.
func (v Vocabulary) SpecialEvents() []domain.SpecialEvent {
	out := make([]domain.SpecialEvent, 0, len(v.Events))
	for _, e := range v.Events {
		out = append(out, domain.SpecialEvent{
			Name:      e.Name,
			Address:   e.Address,
			Region:    e.Region,
			Month:     e.Month,
			StartDay:  e.StartDay,
			EndDay:    e.EndDay,
			AnchorDay: e.AnchorDay,
			StartTime: e.StartTime,
		})
	}
	return out
}

// WordEntry is a word with its numeric value.
type WordEntry struct {
	Word  string
	Value int
}

// SortedWords returns table entries longest word first, ties broken
// lexically, so matching is deterministic and prefers the most specific word.
func SortedWords(table map[string]int) []WordEntry {
	out := make([]WordEntry, 0, len(table))
	for w, n := range table {
		out = append(out, WordEntry{Word: w, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i].Word), utf8.RuneCountInString(out[j].Word)
		if li != lj {
			return li > lj
		}
		return out[i].Word < out[j].Word
	})
	return out
}
