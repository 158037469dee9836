package models

// Status is the lifecycle state of a Session.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return "NOT_STARTED"
	}
}

// Terminal reports whether no further rolls can change the session.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// MarshalYAML renders the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// CellEvent is the outcome category of a cell the player lands on.
type CellEvent int

const (
	Normal CellEvent = iota
	Danger
	Treasure
)

func (e CellEvent) String() string {
	switch e {
	case Danger:
		return "danger"
	case Treasure:
		return "treasure"
	default:
		return "normal"
	}
}

// Player is the adventurer walking the track.
type Player struct {
	HP             int `yaml:"hp"`
	Attack         int `yaml:"attack"`
	MonstersKilled int `yaml:"monsters_killed"`
	TreasuresFound int `yaml:"treasures_found"`
}

const (
	DefaultHP     = 200
	DefaultAttack = 30
)

// NewPlayer returns a fresh player with default stats.
func NewPlayer() Player {
	return Player{HP: DefaultHP, Attack: DefaultAttack}
}

// Session is one play-through from start to a terminal state.
type Session struct {
	BoardLength   int      `yaml:"board_length"`
	Position      int      `yaml:"position"`
	Player        Player   `yaml:"player"`
	DiceRollCount int      `yaml:"dice_roll_count"`
	Status        Status   `yaml:"status"`
	Log           []string `yaml:"log"`
}

// Progress returns the completed share of the track in [0, 1].
func (s Session) Progress() float64 {
	if s.BoardLength <= 0 {
		return 0
	}
	return float64(s.Position) / float64(s.BoardLength)
}
