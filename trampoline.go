// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// evalState is the iterative evaluator for State frame chains.
//
// Fluent chains nest to the left, so a chain of n calls is a bindFrame n
// levels deep. evalState descends through bindFrame.first pushing each
// pending step, runs the leaf transition, then pops steps one by one and
// continues with the frame each returns. Go stack depth stays constant
// regardless of chain length.
func evalState[S any](frame stateFrame[S], state S) (aux S, out S) {
	sp := acquireStack()
	stack := *sp
	for {
		switch f := frame.(type) {
		case *bindFrame[S]:
			stack = append(stack, f.step)
			frame = f.first
			continue
		case pureFrame[S]:
			aux = f.aux
		case getFrame[S]:
			aux = state
		case putFrame[S]:
			aux, state = f.aux, f.replacement
		default:
			panic("monad: unknown state frame")
		}

		if len(stack) == 0 {
			*sp = stack
			releaseStack(sp)
			return aux, state
		}
		top := len(stack) - 1
		step := stack[top].(func(S) State[S])
		stack[top] = nil
		stack = stack[:top]

		next := step(aux)
		if !next.Valid() {
			invariantViolation()
		}
		frame = next.frame
	}
}
