package ability

import (
	"errors"
	"fmt"

	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// Registry is the read-only ability catalog keyed by title.
type Registry struct {
	byTitle map[string]*Definition
	all     []*Definition
}

// NewRegistry binds each definition to the effect factory of its kind.
// Unknown kinds and duplicate titles are errors.
func NewRegistry(defs []gamedata.AbilityDef) (*Registry, error) {
	return newRegistry(defs, factoryFor)
}

func newRegistry(defs []gamedata.AbilityDef, bind func(gamedata.AbilityKind) (Factory, bool)) (*Registry, error) {
	r := &Registry{
		byTitle: make(map[string]*Definition, len(defs)),
		all:     make([]*Definition, 0, len(defs)),
	}
	for _, data := range defs {
		if data.Title == "" {
			return nil, errors.New("ability with empty title")
		}
		if _, dup := r.byTitle[data.Title]; dup {
			return nil, fmt.Errorf("duplicate ability title %q", data.Title)
		}
		factory, ok := bind(data.Kind)
		if !ok {
			return nil, fmt.Errorf("ability %q: unknown kind %q", data.Title, data.Kind)
		}
		d := &Definition{
			data:    data,
			tags:    append(world.Tags(nil), data.Tags...),
			factory: factory,
		}
		r.byTitle[data.Title] = d
		r.all = append(r.all, d)
	}
	return r, nil
}

// LoadRegistry builds a registry from the embedded abilities.json.
func LoadRegistry() (*Registry, error) {
	defs, err := gamedata.LoadAbilities()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no abilities loaded from abilities.json")
	}
	return NewRegistry(defs)
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the definition with the given title.
func (r *Registry) Lookup(title string) (*Definition, bool) {
	d, ok := r.byTitle[title]
	return d, ok
}

// All returns every definition in catalog order.
func (r *Registry) All() []*Definition {
	return r.all
}

// Count returns the number of definitions.
func (r *Registry) Count() int {
	return len(r.all)
}

func factoryFor(kind gamedata.AbilityKind) (Factory, bool) {
	switch kind {
	case gamedata.KindTrail:
		return newTrail, true
	case gamedata.KindVeil:
		return newVeil, true
	case gamedata.KindOrb:
		return newOrb, true
	default:
		return nil, false
	}
}
