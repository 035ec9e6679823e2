package shape

// Dim is a dimension type. Its Size is a positive constant, or Dynamic for Dyn.
//
// Callers may declare their own dimensions:
//
//	type Batch struct{}
//
//	func (Batch) Size() int { return 32 }
type Dim interface {
	Size() int
}

// Shape is a shape type: a zero-size value whose type carries the dimensions.
type Shape interface {
	Rank() int
	Dims() Dims
}

// SizeOf returns the size of a dimension type.
func SizeOf[D Dim]() int {
	var d D
	return d.Size()
}

// Of returns the runtime dims of a shape type.
func Of[S Shape]() Dims {
	var s S
	return s.Dims()
}

// IsStatic reports whether the shape type has no Dyn axis.
func IsStatic[S Shape]() bool {
	return Of[S]().IsStatic()
}

// Dyn is the dynamic dimension: its size is carried by the tensor at runtime.
type Dyn struct{}

// Size implements Dim.
func (Dyn) Size() int { return Dynamic }

// Predefined static dimensions.
type (
	D1    struct{}
	D2    struct{}
	D3    struct{}
	D4    struct{}
	D5    struct{}
	D6    struct{}
	D7    struct{}
	D8    struct{}
	D9    struct{}
	D10   struct{}
	D11   struct{}
	D12   struct{}
	D13   struct{}
	D14   struct{}
	D15   struct{}
	D16   struct{}
	D32   struct{}
	D64   struct{}
	D128  struct{}
	D256  struct{}
	D512  struct{}
	D1024 struct{}
)

func (D1) Size() int    { return 1 }
func (D2) Size() int    { return 2 }
func (D3) Size() int    { return 3 }
func (D4) Size() int    { return 4 }
func (D5) Size() int    { return 5 }
func (D6) Size() int    { return 6 }
func (D7) Size() int    { return 7 }
func (D8) Size() int    { return 8 }
func (D9) Size() int    { return 9 }
func (D10) Size() int   { return 10 }
func (D11) Size() int   { return 11 }
func (D12) Size() int   { return 12 }
func (D13) Size() int   { return 13 }
func (D14) Size() int   { return 14 }
func (D15) Size() int   { return 15 }
func (D16) Size() int   { return 16 }
func (D32) Size() int   { return 32 }
func (D64) Size() int   { return 64 }
func (D128) Size() int  { return 128 }
func (D256) Size() int  { return 256 }
func (D512) Size() int  { return 512 }
func (D1024) Size() int { return 1024 }

// S0 is the rank-0 (scalar) shape.
type S0 struct{}

// S1 is a rank-1 shape.
type S1[A Dim] struct{}

// S2 is a rank-2 shape, rows then columns.
type S2[A, B Dim] struct{}

// S3 is a rank-3 shape.
type S3[A, B, C Dim] struct{}

// S4 is a rank-4 shape.
type S4[A, B, C, D Dim] struct{}

// S5 is a rank-5 shape.
type S5[A, B, C, D, E Dim] struct{}

// S6 is a rank-6 shape.
type S6[A, B, C, D, E, F Dim] struct{}

func (S0) Rank() int                   { return 0 }
func (S1[A]) Rank() int                { return 1 }
func (S2[A, B]) Rank() int             { return 2 }
func (S3[A, B, C]) Rank() int          { return 3 }
func (S4[A, B, C, D]) Rank() int       { return 4 }
func (S5[A, B, C, D, E]) Rank() int    { return 5 }
func (S6[A, B, C, D, E, F]) Rank() int { return 6 }

func (S0) Dims() Dims { return Dims{} }

func (S1[A]) Dims() Dims { return Dims{SizeOf[A]()} }

func (S2[A, B]) Dims() Dims { return Dims{SizeOf[A](), SizeOf[B]()} }

func (S3[A, B, C]) Dims() Dims {
	return Dims{SizeOf[A](), SizeOf[B](), SizeOf[C]()}
}

func (S4[A, B, C, D]) Dims() Dims {
	return Dims{SizeOf[A](), SizeOf[B](), SizeOf[C](), SizeOf[D]()}
}

func (S5[A, B, C, D, E]) Dims() Dims {
	return Dims{SizeOf[A](), SizeOf[B](), SizeOf[C](), SizeOf[D](), SizeOf[E]()}
}

func (S6[A, B, C, D, E, F]) Dims() Dims {
	return Dims{SizeOf[A](), SizeOf[B](), SizeOf[C](), SizeOf[D](), SizeOf[E](), SizeOf[F]()}
}
