// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package game_test

import (
	"fmt"

	"code.hybscloud.com/monad/game"
)

func Example() {
	opening := game.New().Move('c').Move('a')

	fmt.Printf("%+v\n", opening.Run(game.State{}))
	fmt.Printf("%+v\n", opening.Move('b').Move('c').Move('a').Run(game.State{}))
	// Output:
	// {On:true Score:1}
	// {On:false Score:0}
}
