// Package lazyseq builds lazy, demand-driven sequences on top of iter.Seq.
//
// A producer returned by this package computes nothing up front: each value
// is produced only when the consumer asks for the next one, and breaking out
// of a range loop stops production immediately. That makes the classic
// generator-expression one-liners (sum of squares, dot product, reversed
// walk) cheap to express without intermediate slices:
//
//	squares := lazyseq.Sum(lazyseq.Map(lazyseq.Range(10), func(i int) int { return i * i }))
//	dot := lazyseq.Sum(lazyseq.ZipWith(xs, ys, func(x, y int) int { return x * y }))
//
// Restartability: an iter.Seq value is re-rangeable — each range starts the
// producer over. The single-use producer *instance* of generator lore is the
// next/stop pair from iter.Pull: once stop is called or the sequence is
// drained, that instance is spent and a fresh Pull is needed to iterate
// again. See examples/lazyseq for both styles side by side.
package lazyseq
