// Package pied composes unary stages into one typed pipeline.
//
// A Stage[I, O] turns one input into one output. Plain functions become
// stages through a type conversion (Func, Producer, Sink, Await), and every
// pipeline built here is a stage again, so pipelines can be piped further.
//
// Key operations:
// - Convert: own two stages I -> M and M -> O as one stage I -> O
// - Pipe2 .. Pipe8: fold a fixed group of stages left to right
// - Tuple2 .. Tuple8: the same fold called as a method on the group
// - Pipe: fold any number of stages of the same type
// - Go: run a stage on its own goroutine and get a future channel
//
// Adjacent stages are checked by the compiler; a pipeline that compiles can
// always be invoked. Pipelines are immutable and may be invoked many times;
// each call runs every stage again, upstream strictly before downstream.
// Nothing is retried, cancelled or logged here: the context is handed to the
// stages unchanged and failures travel inside the output type.
package pied
