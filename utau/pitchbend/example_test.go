package pitchbend_test

import (
	"fmt"

	"github.com/cwbudde/algo-microtune/utau/pitchbend"
)

func ExampleDecode() {
	curve, err := pitchbend.Decode("ABAC#3#//")
	if err != nil {
		panic(err)
	}

	fmt.Println(curve)
	// Output: [1 2 2 2 -1]
}

func ExampleEncode() {
	s, err := pitchbend.Encode(pitchbend.Curve{0, 0, 0, 0, 0, 0, 0, 64})
	if err != nil {
		panic(err)
	}

	fmt.Println(s)
	// Output: AA#7#BA
}
