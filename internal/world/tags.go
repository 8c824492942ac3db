package world

// Well-known classification tags.
const (
	TagPlayer = "player"
	TagEnemy  = "enemy"
)

// Tags is a small classification set used for friend/foe checks.
type Tags []string

// Has reports whether t contains tag.
func (t Tags) Has(tag string) bool {
	for _, x := range t {
		if x == tag {
			return true
		}
	}
	return false
}

// SharesAny reports whether t and o have at least one tag in common.
// Actors sharing no tag are foes.
func (t Tags) SharesAny(o Tags) bool {
	for _, x := range t {
		if o.Has(x) {
			return true
		}
	}
	return false
}
