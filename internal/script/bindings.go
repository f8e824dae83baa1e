// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/Shopify/go-lua"

	"code.hybscloud.com/monad/game"
	"code.hybscloud.com/monad/mathop"
)

const (
	mathOpTypeName = "MathOp"
	gameTypeName   = "Game"
)

func registerTypes(state *lua.State) {
	registerType(state, mathOpTypeName, mathOpMethods, mathOpToString)
	registerType(state, gameTypeName, gameMethods, gameToString)
	registerConstructor(state, mathOpTypeName, mathOpConstructor)
	registerConstructor(state, gameTypeName, gameConstructor)
}

func registerType(state *lua.State, name string, methods []lua.RegistryFunction, toString lua.Function) {
	lua.NewMetaTable(state, name)
	state.NewTable()
	lua.SetFunctions(state, methods, 0)
	state.SetField(-2, "__index")
	state.PushGoFunction(toString)
	state.SetField(-2, "__tostring")
	state.Pop(1)
}

func registerConstructor(state *lua.State, name string, functions []lua.RegistryFunction) {
	state.NewTable()
	lua.SetFunctions(state, functions, 0)
	state.SetGlobal(name)
}

// --- MathOp ---

var mathOpConstructor = []lua.RegistryFunction{
	{Name: "new", Function: mathOpNew},
	{Name: "nan", Function: mathOpNaN},
}

var mathOpMethods = []lua.RegistryFunction{
	{Name: "div", Function: mathOpBinary(mathop.MathOp.DivRat)},
	{Name: "mul", Function: mathOpBinary(mathop.MathOp.MulRat)},
	{Name: "add", Function: mathOpBinary(mathop.MathOp.AddRat)},
	{Name: "sub", Function: mathOpBinary(mathop.MathOp.SubRat)},
	{Name: "is_nan", Function: mathOpIsNaN},
}

func pushMathOp(state *lua.State, op mathop.MathOp) {
	state.PushUserData(op)
	lua.SetMetaTableNamed(state, mathOpTypeName)
}

func checkMathOp(state *lua.State, index int) mathop.MathOp {
	ud := lua.CheckUserData(state, index, mathOpTypeName)
	if op, ok := ud.(mathop.MathOp); ok {
		return op
	}
	lua.ArgumentError(state, index, "MathOp expected")
	return mathop.NaN()
}

// checkRat reads a Lua number as the rational of its shortest decimal
// form, so 0.1 becomes 1/10 rather than the binary expansion of the float.
func checkRat(state *lua.State, index int) *big.Rat {
	n := lua.CheckNumber(state, index)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		lua.ArgumentError(state, index, "finite number expected")
		return nil
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
	if !ok {
		lua.ArgumentError(state, index, "number not representable")
		return nil
	}
	return r
}

func mathOpNew(state *lua.State) int {
	pushMathOp(state, mathop.NewRat(checkRat(state, 1)))
	return 1
}

func mathOpNaN(state *lua.State) int {
	pushMathOp(state, mathop.NaN())
	return 1
}

func mathOpBinary(op func(mathop.MathOp, *big.Rat) mathop.MathOp) lua.Function {
	return func(state *lua.State) int {
		self := checkMathOp(state, 1)
		pushMathOp(state, op(self, checkRat(state, 2)))
		return 1
	}
}

func mathOpIsNaN(state *lua.State) int {
	state.PushBoolean(checkMathOp(state, 1).IsNaN())
	return 1
}

func mathOpToString(state *lua.State) int {
	state.PushString(checkMathOp(state, 1).String())
	return 1
}

// --- Game ---

var gameConstructor = []lua.RegistryFunction{
	{Name: "new", Function: gameNew},
}

var gameMethods = []lua.RegistryFunction{
	{Name: "move", Function: gameMove},
	{Name: "moves", Function: gameMoves},
	{Name: "chain", Function: gameChain},
	{Name: "run", Function: gameRun},
}

func pushGame(state *lua.State, g game.Game) {
	state.PushUserData(g)
	lua.SetMetaTableNamed(state, gameTypeName)
}

func checkGame(state *lua.State, index int) game.Game {
	ud := lua.CheckUserData(state, index, gameTypeName)
	if g, ok := ud.(game.Game); ok {
		return g
	}
	lua.ArgumentError(state, index, "Game expected")
	return game.New()
}

func gameNew(state *lua.State) int {
	pushGame(state, game.New())
	return 1
}

// gameMove applies the first rune of its argument; an empty string is a no-op move.
func gameMove(state *lua.State) int {
	self := checkGame(state, 1)
	s := lua.CheckString(state, 2)
	c, _ := utf8.DecodeRuneInString(s)
	pushGame(state, self.Move(c))
	return 1
}

func gameMoves(state *lua.State) int {
	self := checkGame(state, 1)
	pushGame(state, self.Moves(lua.CheckString(state, 2)))
	return 1
}

func gameChain(state *lua.State) int {
	self := checkGame(state, 1)
	pushGame(state, self.Then(checkGame(state, 2)))
	return 1
}

// gameRun returns the final on flag and score, starting from (on, score)
// which default to (false, 0).
func gameRun(state *lua.State) int {
	self := checkGame(state, 1)
	initial := game.State{
		On:    state.ToBoolean(2),
		Score: lua.OptInteger(state, 3, 0),
	}
	final := self.Run(initial)
	state.PushBoolean(final.On)
	state.PushInteger(final.Score)
	return 2
}

func gameToString(state *lua.State) int {
	checkGame(state, 1)
	state.PushString("<Game>")
	return 1
}
