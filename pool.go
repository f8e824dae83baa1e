// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "sync"

// Step stacks for evalState.
// A stack is acquired per run and released only on normal completion;
// a run that panics abandons its stack to the garbage collector.

const stackCap = 16

var stackPool = sync.Pool{New: func() any {
	s := make([]Erased, 0, stackCap)
	return &s
}}

func acquireStack() *[]Erased {
	return stackPool.Get().(*[]Erased)
}

// releaseStack zeroes the stack's backing array and returns it to the pool.
func releaseStack(sp *[]Erased) {
	s := (*sp)[:0]
	clear(s[:cap(s)])
	*sp = s
	stackPool.Put(sp)
}
