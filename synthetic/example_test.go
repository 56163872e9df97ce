package synthetic_test

import (
	"fmt"

	"github.com/katalvlaran/timewalk/synthetic"
	"gonum.org/v1/gonum/floats"
)

// ExampleTransition scales the profile to one thousand particles.
func ExampleTransition() {
	h, _ := synthetic.Transition(5, synthetic.WithTransition(100), synthetic.WithResidual(0), synthetic.WithTotal(1000))
	fmt.Println(h, floats.Sum(h))
	// Output: [843 105 31 13 7] 999
}
