package tensor

import (
	"math/rand"
	"testing"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

type (
	m8x8     = shape.S2[shape.D8, shape.D8]
	m128x128 = shape.S2[shape.D128, shape.D128]
)

func BenchmarkTensorCreation(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Zeros[float32, m128x128]()
		}
	})

	b.Run("Ones", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Ones[float32, m128x128]()
		}
	})

	b.Run("Randn", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Randn[float32, m128x128](rng)
		}
	})
}

func BenchmarkSmallAdd(b *testing.B) {
	for _, p := range []layout.Policy{layout.DefaultPolicy{}, layout.StackFirstPolicy{}} {
		a := Ones[float64, m8x8](WithPolicy(p))
		c := Ones[float64, m8x8](WithPolicy(p))
		b.Run(p.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = a.Add(c)
			}
		})
	}
}

func BenchmarkElementwise(b *testing.B) {
	a := Arange[float32, m128x128]()
	c := Ones[float32, m128x128]()

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = a.Add(c)
		}
	})

	b.Run("AddTransposed", func(b *testing.B) {
		at := Transpose2(a)
		for i := 0; i < b.N; i++ {
			_ = at.Add(Transpose2(c))
		}
	})

	b.Run("AddBroadcast", func(b *testing.B) {
		row := Broadcast[m128x128](Ones[float32, shape.S2[shape.D1, shape.D128]]())
		for i := 0; i < b.N; i++ {
			_ = a.Add(row)
		}
	})

	b.Run("Exp", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Exp(c)
		}
	})
}

func BenchmarkReduce(b *testing.B) {
	a := Arange[float32, m128x128]()

	b.Run("Axis0", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Sum[shape.S2[shape.D1, shape.D128]](a, 0)
		}
	})

	b.Run("Axis1", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Sum[shape.S2[shape.D128, shape.D1]](a, 1)
		}
	})

	b.Run("All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = a.SumAll()
		}
	})
}

func BenchmarkMatMul(b *testing.B) {
	a := Arange[float32, m128x128]()
	c := Ones[float32, m128x128]()

	b.Run("BLAS", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = MatMul(a, c)
		}
	})

	b.Run("BLASTransposed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = MatMul(Transpose2(a), c)
		}
	})

	b.Run("Naive", func(b *testing.B) {
		ai := Arange[int32, m128x128]()
		ci := Ones[int32, m128x128]()
		for i := 0; i < b.N; i++ {
			_ = MatMul(ai, ci)
		}
	})
}
