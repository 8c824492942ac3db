package gamedata

// =============================================================================
// ABILITY CATALOG
// =============================================================================
//
// Abilities are leveled behaviors attached to entities (player or enemy).
// The catalog in abilities.json lists one definition per ability; the title is
// the unique key used by spawn profiles, level-up offers and the HUD.
//
// Kinds:
//   - trail: drops persistent cube damage zones at the owner's position on a
//     fixed cadence; zone edge grows linearly with level
//   - veil:  evasion aura; sets owner evasion to base + perLevel*level and
//     shows a shield sphere around the owner
//   - orb:   homing projectile orbiting the owner until it locks onto the
//     nearest foe, hits it, and returns to orbit
//
// JSON Schema: go run ./cmd/abilityschema
//
// {
//   "title": "Onchain Trail",
//   "description": "Leaves a trail of damaging blocks",
//   "kind": "trail",
//   "tags": ["area", "damage"],
//   "tuning": {"cadenceMs": 500, "zoneEdge": 0.5, "damage": 1}
// }

// AbilityKind selects the effect implementation bound to a definition.
type AbilityKind string

const (
	KindTrail AbilityKind = "trail"
	KindVeil  AbilityKind = "veil"
	KindOrb   AbilityKind = "orb"
)

// Valid reports whether k is one of the known kinds.
func (k AbilityKind) Valid() bool {
	switch k {
	case KindTrail, KindVeil, KindOrb:
		return true
	}
	return false
}

// Tuning holds the numeric parameters of an ability. Each kind reads only the
// fields it needs.
type Tuning struct {
	// trail
	CadenceMs int     `json:"cadenceMs,omitempty"` // zone spawn interval
	ZoneEdge  float32 `json:"zoneEdge,omitempty"`  // zone edge length at level 1
	Damage    int     `json:"damage,omitempty"`    // damage per hit (trail, orb)

	// veil
	BaseEvasion     float64 `json:"baseEvasion,omitempty"`
	EvasionPerLevel float64 `json:"evasionPerLevel,omitempty"`
	ShieldRadius    float32 `json:"shieldRadius,omitempty"`

	// orb
	OrbitRadius    float32 `json:"orbitRadius,omitempty"`
	OrbitSpeed     float64 `json:"orbitSpeed,omitempty"` // radians per second of game time
	Step           float32 `json:"step,omitempty"`       // distance per tick while locked
	StepPerLevel   float32 `json:"stepPerLevel,omitempty"`
	ProjectileSize float32 `json:"projectileSize,omitempty"` // half extent
}

// AbilityDef defines an ability loaded from JSON.
type AbilityDef struct {
	Title       string      `json:"title" jsonschema:"required"`
	Description string      `json:"description"`
	Tooltip     string      `json:"tooltip,omitempty"`
	Flavor      string      `json:"flavor,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Kind        AbilityKind `json:"kind" jsonschema:"required,enum=trail,enum=veil,enum=orb"`
	Tuning      Tuning      `json:"tuning"`
}

// AbilityGrant requests an ability at a level. It is used by spawn profiles
// and by entities receiving abilities.
type AbilityGrant struct {
	Title string `json:"title"`
	Level int    `json:"level"`
}

// AbilitiesFile represents the structure of abilities.json.
type AbilitiesFile struct {
	Abilities []AbilityDef `json:"abilities"`
}

// LoadAbilities loads ability definitions from the embedded abilities.json file.
func LoadAbilities() ([]AbilityDef, error) {
	file, err := Load[AbilitiesFile]("abilities.json")
	if err != nil {
		return nil, err
	}
	return file.Abilities, nil
}
