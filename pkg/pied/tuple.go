package pied

// Tuple2 .. Tuple8 hold a fixed group of type-adjacent stages. Pipe on a
// tuple gives the same pipeline as the PipeN function of the same arity.

type Tuple2[A, B, C any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
}

func NewTuple2[A, B, C any](s1 Stage[A, B], s2 Stage[B, C]) Tuple2[A, B, C] {
	return Tuple2[A, B, C]{
		S1: s1,
		S2: s2,
	}
}

func (t Tuple2[A, B, C]) Pipe() Pied[A, C] {
	return Pipe2(t.S1, t.S2)
}

type Tuple3[A, B, C, D any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
}

func NewTuple3[A, B, C, D any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D]) Tuple3[A, B, C, D] {
	return Tuple3[A, B, C, D]{
		S1: s1,
		S2: s2,
		S3: s3,
	}
}

func (t Tuple3[A, B, C, D]) Pipe() Pied[A, D] {
	return Pipe3(t.S1, t.S2, t.S3)
}

type Tuple4[A, B, C, D, E any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
	S4 Stage[D, E]
}

func NewTuple4[A, B, C, D, E any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E]) Tuple4[A, B, C, D, E] {
	return Tuple4[A, B, C, D, E]{
		S1: s1,
		S2: s2,
		S3: s3,
		S4: s4,
	}
}

func (t Tuple4[A, B, C, D, E]) Pipe() Pied[A, E] {
	return Pipe4(t.S1, t.S2, t.S3, t.S4)
}

type Tuple5[A, B, C, D, E, F any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
	S4 Stage[D, E]
	S5 Stage[E, F]
}

func NewTuple5[A, B, C, D, E, F any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E], s5 Stage[E, F]) Tuple5[A, B, C, D, E, F] {
	return Tuple5[A, B, C, D, E, F]{
		S1: s1,
		S2: s2,
		S3: s3,
		S4: s4,
		S5: s5,
	}
}

func (t Tuple5[A, B, C, D, E, F]) Pipe() Pied[A, F] {
	return Pipe5(t.S1, t.S2, t.S3, t.S4, t.S5)
}

type Tuple6[A, B, C, D, E, F, G any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
	S4 Stage[D, E]
	S5 Stage[E, F]
	S6 Stage[F, G]
}

func NewTuple6[A, B, C, D, E, F, G any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E], s5 Stage[E, F], s6 Stage[F, G]) Tuple6[A, B, C, D, E, F, G] {
	return Tuple6[A, B, C, D, E, F, G]{
		S1: s1,
		S2: s2,
		S3: s3,
		S4: s4,
		S5: s5,
		S6: s6,
	}
}

func (t Tuple6[A, B, C, D, E, F, G]) Pipe() Pied[A, G] {
	return Pipe6(t.S1, t.S2, t.S3, t.S4, t.S5, t.S6)
}

type Tuple7[A, B, C, D, E, F, G, H any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
	S4 Stage[D, E]
	S5 Stage[E, F]
	S6 Stage[F, G]
	S7 Stage[G, H]
}

func NewTuple7[A, B, C, D, E, F, G, H any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E], s5 Stage[E, F], s6 Stage[F, G], s7 Stage[G, H]) Tuple7[A, B, C, D, E, F, G, H] {
	return Tuple7[A, B, C, D, E, F, G, H]{
		S1: s1,
		S2: s2,
		S3: s3,
		S4: s4,
		S5: s5,
		S6: s6,
		S7: s7,
	}
}

func (t Tuple7[A, B, C, D, E, F, G, H]) Pipe() Pied[A, H] {
	return Pipe7(t.S1, t.S2, t.S3, t.S4, t.S5, t.S6, t.S7)
}

type Tuple8[A, B, C, D, E, F, G, H, I any] struct {
	S1 Stage[A, B]
	S2 Stage[B, C]
	S3 Stage[C, D]
	S4 Stage[D, E]
	S5 Stage[E, F]
	S6 Stage[F, G]
	S7 Stage[G, H]
	S8 Stage[H, I]
}

func NewTuple8[A, B, C, D, E, F, G, H, I any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E], s5 Stage[E, F], s6 Stage[F, G], s7 Stage[G, H], s8 Stage[H, I]) Tuple8[A, B, C, D, E, F, G, H, I] {
	return Tuple8[A, B, C, D, E, F, G, H, I]{
		S1: s1,
		S2: s2,
		S3: s3,
		S4: s4,
		S5: s5,
		S6: s6,
		S7: s7,
		S8: s8,
	}
}

func (t Tuple8[A, B, C, D, E, F, G, H, I]) Pipe() Pied[A, I] {
	return Pipe8(t.S1, t.S2, t.S3, t.S4, t.S5, t.S6, t.S7, t.S8)
}
