package model

import (
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Trait is a capability tag describing an element's role.
type Trait string

const (
	TraitButton            Trait = "button"
	TraitLink              Trait = "link"
	TraitImage             Trait = "image"
	TraitHeader            Trait = "header"
	TraitStaticText        Trait = "staticText"
	TraitUpdatesFrequently Trait = "updatesFrequently"
	TraitAdjustable        Trait = "adjustable"
	TraitSearchField       Trait = "searchField"
	TraitSelected          Trait = "selected"
	TraitKeyboardKey       Trait = "keyboardKey"
	TraitSummaryElement    Trait = "summaryElement"
	TraitPlaysSound        Trait = "playsSound"
	TraitStartsMedia       Trait = "startsMediaSession"
	TraitNotEnabled        Trait = "notEnabled"
	TraitCausesPageTurn    Trait = "causesPageTurn"
	TraitTabBar            Trait = "tabBar"
)

// TraitSet is an unordered set of traits. The zero value is an empty set.
type TraitSet map[Trait]struct{}

// NewTraitSet builds a set from the given traits, dropping duplicates
// and empty names.
func NewTraitSet(traits ...Trait) TraitSet {
	s := make(TraitSet, len(traits))
	for _, t := range traits {
		t = Trait(strings.TrimSpace(string(t)))
		if t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}

// Has reports whether t is in the set.
func (s TraitSet) Has(t Trait) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of traits.
func (s TraitSet) Len() int {
	return len(s)
}

// Names returns trait names sorted alphabetically.
func (s TraitSet) Names() []string {
	names := make([]string, 0, len(s))
	for t := range s {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// String joins the sorted names with ", ".
func (s TraitSet) String() string {
	return strings.Join(s.Names(), ", ")
}

// Equal reports whether both sets hold the same traits.
func (s TraitSet) Equal(o TraitSet) bool {
	if len(s) != len(o) {
		return false
	}
	for t := range s {
		if !o.Has(t) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (s TraitSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of trait names.
func (s *TraitSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = traitSetFromNames(names)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence.
func (s TraitSet) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}

// UnmarshalYAML decodes a sequence of trait names.
func (s *TraitSet) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*s = traitSetFromNames(names)
	return nil
}

func traitSetFromNames(names []string) TraitSet {
	traits := make([]Trait, len(names))
	for i, n := range names {
		traits[i] = Trait(n)
	}
	return NewTraitSet(traits...)
}
