package systems

import (
	"log"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples one tick of input for every character. A failing
// source yields neutral input for the tick.
func UpdateInput(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		if input.Source == nil {
			return
		}
		in, err := input.Source.Sample()
		if err != nil {
			if input.Err == nil {
				log.Printf("input: %s: %v", components.Character.Get(e).Name, err)
			}
			input.Err = err
			input.Current = ability.Input{}
			return
		}
		input.Current = in
	})
}
