package components

import (
	"github.com/automoto/doomerang-abilities/shared/combat"
	"github.com/yohamta/donburi"
)

var Health = donburi.NewComponentType[combat.Health]()
