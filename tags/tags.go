package tags

import (
	"github.com/automoto/doomerang-abilities/shared/collision"
	"github.com/yohamta/donburi"
)

var (
	Character = donburi.NewTag().SetName("Character")
	Target    = donburi.NewTag().SetName("Target")
)

// Physics world classes
const (
	ResolvSolid     = collision.TagGround
	ResolvCharacter = collision.TagCharacter
	ResolvTarget    = "target"
)
