// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

import "sync"

// matcherPool recycles matcher instances (in particular their head/chain
// backing arrays) across calls. Container writers compress many blocks
// back-to-back, so this avoids re-allocating the hash table for every
// block.
var matcherPool = sync.Pool{
	New: func() any {
		return &matcher{}
	},
}

// acquireMatcher gets a matcher from the pool, reset for data.
func acquireMatcher(data []byte, params levelParams, longVariant bool) *matcher {
	m := matcherPool.Get().(*matcher)
	m.head = [hashSize]int32{}
	if cap(m.chain) >= len(data) {
		m.chain = m.chain[:len(data)]
		for i := range m.chain {
			m.chain[i] = 0
		}
	} else {
		m.chain = make([]int32, len(data))
	}
	m.data = data
	m.params = params
	m.longVariant = longVariant
	return m
}

// releaseMatcher returns m to the pool. m must not be used afterward.
func releaseMatcher(m *matcher) {
	if m == nil {
		return
	}
	m.data = nil
	matcherPool.Put(m)
}
