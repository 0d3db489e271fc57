package components

import (
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/shared/combat"
	"github.com/yohamta/donburi"
)

// AbilityData owns a character's ability machine and what it did on the
// last tick.
type AbilityData struct {
	Machine *ability.Machine
	Output  ability.Output
	Hits    []combat.Hit
}

var Ability = donburi.NewComponentType[AbilityData]()
