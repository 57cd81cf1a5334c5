// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the scratch big.Int pool shared by the recursive cores.
package multiply

import (
	"math/big"
	"sync"
)

// MaxPooledBitLen is the maximum size (in bits) of a big.Int accepted back
// into the pool. Larger objects are left for GC collection so a single huge
// multiplication cannot pin its working set in memory indefinitely.
const MaxPooledBitLen = 4_000_000

// bigIntPool pools *big.Int scratch values used for evaluation-point sums
// and interpolation temporaries. The recursion allocates its results freshly
// (they escape to the caller); only short-lived intermediates cycle through
// the pool.
var bigIntPool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// acquireBigInt gets a scratch big.Int from the pool.
func acquireBigInt() *big.Int {
	return bigIntPool.Get().(*big.Int)
}

// releaseBigInt returns a scratch big.Int to the pool.
// Oversized values are dropped instead of pooled.
func releaseBigInt(x *big.Int) {
	if x == nil || x.BitLen() > MaxPooledBitLen {
		return
	}
	x.SetInt64(0)
	bigIntPool.Put(x)
}
