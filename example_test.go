// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"fmt"

	"code.hybscloud.com/monad"
)

func ExampleBound() {
	div := monad.Bound(func(v, d int) monad.Maybe[int] {
		if d == 0 {
			return monad.Nothing[int]()
		}
		return monad.Just(v / d)
	})

	fmt.Println(div(monad.Just(10), 2).Get())
	fmt.Println(div(div(monad.Just(10), 0), 2).IsNothing())
	// Output:
	// 5 true
	// true
}

func ExampleState() {
	counter := monad.Empty[int]().Put(1).Modify(func(n int) int { return n * 10 })

	fmt.Println(counter.Run(0))
	fmt.Println(counter.Get().Eval(0))
	// Output:
	// 10
	// 10
}

func ExampleCompose() {
	m := monad.Compose(monad.Empty[string]().Get(), func(cur string) monad.State[string] {
		return monad.Empty[string]().Put(cur + ", world")
	})

	fmt.Println(m.Run("hello"))
	// Output:
	// hello, world
}
