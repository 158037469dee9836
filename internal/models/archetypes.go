package models

// MonsterArchetype is the template a Monster is sampled from.
type MonsterArchetype struct {
	Name      string
	MinAttack int
	MaxAttack int
	MinHP     int
	MaxHP     int
}

// Monster is a sampled archetype met on a danger cell.
type Monster struct {
	Name   string
	Attack int
	HP     int
}

var (
	Unicorn  = MonsterArchetype{Name: "Unicorn", MinAttack: 30, MaxAttack: 50, MinHP: 150, MaxHP: 250}
	Gecko    = MonsterArchetype{Name: "Gecko", MinAttack: 20, MaxAttack: 35, MinHP: 100, MaxHP: 180}
	Squirrel = MonsterArchetype{Name: "Squirrel", MinAttack: 5, MaxAttack: 10, MinHP: 20, MaxHP: 50}
)

// TreasureKind selects the effect a treasure applies on pickup.
type TreasureKind int

const (
	PowerPotion TreasureKind = iota
	HPPotion
	MovementPotion
)

// TreasureArchetype describes a treasure and its effect for display.
type TreasureArchetype struct {
	Kind   TreasureKind
	Name   string
	Effect string
}

var (
	Power    = TreasureArchetype{Kind: PowerPotion, Name: "Power Potion", Effect: "attack +5"}
	Health   = TreasureArchetype{Kind: HPPotion, Name: "HP Potion", Effect: "HP +130"}
	Movement = TreasureArchetype{Kind: MovementPotion, Name: "Movement Potion", Effect: "advance 2-6 cells"}
)
