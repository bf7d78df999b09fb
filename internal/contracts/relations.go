package contracts

// Relation is a planetary relationship grade. Natural and temporal grades
// use only Friend/Neutral/Enemy; the compound five-fold scale adds the
// Great variants.
type Relation int

const (
	GreatEnemy Relation = iota - 2
	Enemy
	NeutralRelation
	Friend
	GreatFriend
)

// String returns the relation grade name.
func (r Relation) String() string {
	switch r {
	case GreatEnemy:
		return "great_enemy"
	case Enemy:
		return "enemy"
	case Friend:
		return "friend"
	case GreatFriend:
		return "great_friend"
	default:
		return "neutral"
	}
}

// MarshalText makes Relation render as its name in JSON maps.
func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Dignity is a planet's essential standing in its sign.
type Dignity int

const (
	Debilitated Dignity = iota
	EnemySign
	NeutralSign
	FriendSign
	OwnSign
	Moolatrikona
	Exalted
)

var dignityNames = [...]string{
	"debilitated", "enemy_sign", "neutral_sign", "friend_sign",
	"own_sign", "moolatrikona", "exalted",
}

// String returns the dignity name.
func (d Dignity) String() string {
	if d < 0 || int(d) >= len(dignityNames) {
		return "unknown"
	}
	return dignityNames[d]
}

// MarshalText makes Dignity render as its name in JSON.
func (d Dignity) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DignityInfo is one planet's computed standing.
type DignityInfo struct {
	Dignity Dignity `json:"dignity"`
	Sign    Sign    `json:"sign"`
	Degree  float64 `json:"degree"`
	Combust bool    `json:"combust"`
}

// Relationships is the full pairwise relationship report plus per-planet
// dignities. Pairwise maps are keyed by planet name, source first.
type Relationships struct {
	Natural   map[string]map[string]Relation `json:"natural"`
	Temporal  map[string]map[string]Relation `json:"temporal"`
	Compound  map[string]map[string]Relation `json:"compound"`
	Dignities map[string]DignityInfo         `json:"dignities"`
}

// AspectKind distinguishes the universal 7th-house aspect from the special
// aspects of Mars, Jupiter and Saturn. Both are full-strength whole-house
// drishti; no continuous-degree partial aspects exist in this model.
type AspectKind string

const (
	AspectFull    AspectKind = "full"
	AspectSpecial AspectKind = "special"
)

// Aspect is one whole-house drishti cast by a planet.
type Aspect struct {
	Source       Planet     `json:"source"`
	SourceName   string     `json:"source_name"`
	TargetHouse  int        `json:"target_house"`
	TargetSign   Sign       `json:"target_sign"`
	Targets      []Planet   `json:"targets,omitempty"` // planets standing in the aspected house
	Kind         AspectKind `json:"kind"`
	Strength     float64    `json:"strength"` // whole-house aspects are always 1.0
}
