package pied

// Pipe folds stages of the same type left to right into one pipeline.
// It panics when no stage is given.
func Pipe[T any](stages ...Stage[T, T]) Pied[T, T] {
	if len(stages) == 0 {
		panic("pied.Pipe: at least one stage is required")
	}

	var s Stage[T, T] = stages[0]
	for _, next := range stages[1:] {
		s = Convert(s, next)
	}
	return From(s)
}

// Pipe2 composes two stages, equivalent to Convert wrapped into a Pied
func Pipe2[A, B, C any](s1 Stage[A, B], s2 Stage[B, C]) Pied[A, C] {
	return From[A, C](Convert(s1, s2))
}

// Pipe3 folds 3 stages left to right
func Pipe3[A, B, C, D any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D]) Pied[A, D] {
	return From[A, D](Convert[A, C, D](Pipe2(s1, s2), s3))
}

// Pipe4 folds 4 stages left to right
func Pipe4[A, B, C, D, E any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E]) Pied[A, E] {
	return From[A, E](Convert[A, D, E](Pipe3(s1, s2, s3), s4))
}

// Pipe5 folds 5 stages left to right
func Pipe5[A, B, C, D, E, F any](s1 Stage[A, B], s2 Stage[B, C],
	s3 Stage[C, D], s4 Stage[D, E], s5 Stage[E, F]) Pied[A, F] {
	return From[A, F](Convert[A, E, F](Pipe4(s1, s2, s3, s4), s5))
}

// Pipe6 folds 6 stages left to right
func Pipe6[A, B, C, D, E, F, G any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D],
	s4 Stage[D, E], s5 Stage[E, F], s6 Stage[F, G]) Pied[A, G] {
	return From[A, G](Convert[A, F, G](Pipe5(s1, s2, s3, s4, s5), s6))
}

// Pipe7 folds 7 stages left to right
func Pipe7[A, B, C, D, E, F, G, H any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D],
	s4 Stage[D, E], s5 Stage[E, F], s6 Stage[F, G], s7 Stage[G, H]) Pied[A, H] {
	return From[A, H](Convert[A, G, H](Pipe6(s1, s2, s3, s4, s5, s6), s7))
}

// Pipe8 folds 8 stages left to right
func Pipe8[A, B, C, D, E, F, G, H, I any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E],
	s5 Stage[E, F], s6 Stage[F, G], s7 Stage[G, H], s8 Stage[H, I]) Pied[A, I] {
	return From[A, I](Convert[A, H, I](Pipe7(s1, s2, s3, s4, s5, s6, s7), s8))
}
