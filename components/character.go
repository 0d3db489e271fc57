package components

import (
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Name       string
	SpawnIndex int
}

var Character = donburi.NewComponentType[CharacterData]()

// Presentation is the snapshot refreshed after motion integration each tick.
var Presentation = donburi.NewComponentType[ability.Snapshot]()
