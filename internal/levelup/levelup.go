// Package levelup builds and resolves level-up offers.
package levelup

import (
	"github.com/samdwyer/arenasurvivors/internal/ability"
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
)

// MaxCandidates is the number of cards drawn for every offer.
const MaxCandidates = 15

// Random is the source used to draw candidates. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Grantee receives the chosen ability.
type Grantee interface {
	InitAbilities(grants []gamedata.AbilityGrant)
}

// Candidate is one card of an offer: either an upgrade of an owned
// instance or a new ability from the registry.
type Candidate struct {
	Definition *ability.Definition
	Owned      *ability.Instance // nil for a new ability
}

// Upgrade reports whether the candidate levels an owned ability.
func (c Candidate) Upgrade() bool {
	return c.Owned != nil
}

// Title returns the ability title.
func (c Candidate) Title() string {
	return c.Definition.Title()
}

// NextLevel returns the level the ability reaches if the candidate is chosen.
func (c Candidate) NextLevel() int {
	if c.Owned == nil {
		return 1
	}
	return ability.ClampLevel(c.Owned.Level() + 1)
}

// Pool lists the owned abilities as upgrades, in owned order, followed by
// every registry ability not owned, in catalog order.
func Pool(owned []*ability.Instance, reg *ability.Registry) []Candidate {
	pool := make([]Candidate, 0, len(owned)+reg.Count())
	held := make(map[string]bool, len(owned))
	for _, inst := range owned {
		pool = append(pool, Candidate{Definition: inst.Definition(), Owned: inst})
		held[inst.Title()] = true
	}
	for _, def := range reg.All() {
		if !held[def.Title()] {
			pool = append(pool, Candidate{Definition: def})
		}
	}
	return pool
}

// Draw picks n candidates uniformly with replacement. An empty pool yields nil.
func Draw(pool []Candidate, n int, rng Random) []Candidate {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	out := make([]Candidate, n)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}
	return out
}

// Offer is a pending level-up choice.
type Offer struct {
	PlayerLevel int
	Candidates  []Candidate
}

// NewOffer draws MaxCandidates from the pool of the given abilities. It
// returns nil when there is nothing to offer.
func NewOffer(playerLevel int, owned []*ability.Instance, reg *ability.Registry, rng Random) *Offer {
	cands := Draw(Pool(owned, reg), MaxCandidates, rng)
	if cands == nil {
		return nil
	}
	return &Offer{PlayerLevel: playerLevel, Candidates: cands}
}

// Valid reports whether i indexes a candidate.
func (o *Offer) Valid(i int) bool {
	return o != nil && i >= 0 && i < len(o.Candidates)
}

// Apply grants candidate c to g: an owned ability gains one level, a new
// one is installed at level 1 and activated.
func Apply(c Candidate, g Grantee) {
	g.InitAbilities([]gamedata.AbilityGrant{{Title: c.Title(), Level: 1}})
}
