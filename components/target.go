package components

import (
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
)

type TargetData struct {
	Name string
	Box  collision.Rect
}

var Target = donburi.NewComponentType[TargetData]()
