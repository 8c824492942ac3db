package entity

// Roster is the ordered set of live enemies.
type Roster struct {
	members []*Entity
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add tracks e. Dead entities and entities already tracked are ignored.
func (r *Roster) Add(e *Entity) {
	if e.dead || r.Contains(e) {
		return
	}
	r.members = append(r.members, e)
	e.roster = r
}

// Remove untracks e and reports whether it was present.
func (r *Roster) Remove(e *Entity) bool {
	for i, m := range r.members {
		if m == e {
			r.members = append(r.members[:i], r.members[i+1:]...)
			e.roster = nil
			return true
		}
	}
	return false
}

// Contains reports whether e is tracked.
func (r *Roster) Contains(e *Entity) bool {
	for _, m := range r.members {
		if m == e {
			return true
		}
	}
	return false
}

// Len returns the number of tracked entities.
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns a snapshot safe to range over while entities die.
func (r *Roster) Members() []*Entity {
	out := make([]*Entity, len(r.members))
	copy(out, r.members)
	return out
}
