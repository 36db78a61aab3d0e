// SPDX-License-Identifier: MIT

package integral_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/integral"
)

func ExampleCompute() {
	s, _ := integral.Compute(integral.Polynomial, integral.Params{"c": 1, "n": 1, "lower": 0, "upper": 2})
	fmt.Println(s)
	// Output: = 2.000000
}

func ExampleEvaluator() {
	e := integral.NewEvaluator()
	_ = e.Set("n", -1)
	fmt.Println(e.Evaluate())
	_ = e.Select(integral.Trig)
	_ = e.Set("b", 0)
	fmt.Println(e.Evaluate())
	// Output:
	// 1·ln|x| + C
	// Error
}
