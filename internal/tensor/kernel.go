package tensor

import (
	"iter"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/parallel"
)

// Kernels walk their operands chunk by chunk with the largest chunk size all
// of them support. Chunks are visited in order on the calling goroutine; the
// elements of one chunk are processed through parallel.ForRange.

func mapInto[T, U any](dst layout.MutLayout[U], src layout.Layout[T], f func(T) U) {
	size := min(dst.OptChunkSize(), src.OptChunkSize())
	next, stop := iter.Pull(src.Chunks(size))
	defer stop()

	cfg := ParallelConfig()
	for out := range dst.ChunksMut(size) {
		in, _ := next()
		parallel.ForRange(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(in[i])
			}
		}, cfg)
	}
}

func zipInto[T any](dst layout.MutLayout[T], a, b layout.Layout[T], f func(x, y T) T) {
	size := layout.MinChunkSize[T](dst, a, b)
	nextA, stopA := iter.Pull(a.Chunks(size))
	defer stopA()
	nextB, stopB := iter.Pull(b.Chunks(size))
	defer stopB()

	cfg := ParallelConfig()
	for out := range dst.ChunksMut(size) {
		ca, _ := nextA()
		cb, _ := nextB()
		parallel.ForRange(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(ca[i], cb[i])
			}
		}, cfg)
	}
}

func zip3Into[T any](dst layout.MutLayout[T], a, b, c layout.Layout[T], f func(x, y, z T) T) {
	size := layout.MinChunkSize[T](dst, a, b, c)
	nextA, stopA := iter.Pull(a.Chunks(size))
	defer stopA()
	nextB, stopB := iter.Pull(b.Chunks(size))
	defer stopB()
	nextC, stopC := iter.Pull(c.Chunks(size))
	defer stopC()

	cfg := ParallelConfig()
	for out := range dst.ChunksMut(size) {
		ca, _ := nextA()
		cb, _ := nextB()
		cc, _ := nextC()
		parallel.ForRange(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(ca[i], cb[i], cc[i])
			}
		}, cfg)
	}
}

func mapInPlace[T any](dst layout.MutLayout[T], f func(T) T) {
	cfg := ParallelConfig()
	for out := range dst.ChunksMut(dst.OptChunkSize()) {
		parallel.ForRange(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(out[i])
			}
		}, cfg)
	}
}

func zipInPlace[T any](dst layout.MutLayout[T], b layout.Layout[T], f func(x, y T) T) {
	size := layout.MinChunkSize[T](dst, b)
	next, stop := iter.Pull(b.Chunks(size))
	defer stop()

	cfg := ParallelConfig()
	for out := range dst.ChunksMut(size) {
		in, _ := next()
		parallel.ForRange(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(out[i], in[i])
			}
		}, cfg)
	}
}
