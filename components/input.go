package components

import (
	"github.com/automoto/doomerang-abilities/shared/ability"
	"github.com/yohamta/donburi"
)

// InputSampler produces one tick of input.
type InputSampler interface {
	Sample() (ability.Input, error)
}

// InputFunc adapts a plain function to InputSampler.
type InputFunc func() (ability.Input, error)

func (f InputFunc) Sample() (ability.Input, error) {
	return f()
}

// InputData stores the input sampled for the current tick. A nil Source
// leaves Current untouched. Err holds the last sampling failure.
type InputData struct {
	Source  InputSampler
	Current ability.Input
	Err     error
}

var Input = donburi.NewComponentType[InputData]()
