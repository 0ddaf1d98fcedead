// Package chain builds a pipeline one stage at a time.
//
// Where pied.Pipe2 .. pied.Pipe8 take a whole group of stages at once, a
// Chain[I, O] grows with every call and is type checked at each step, so
// chains have no length limit.
//
// Key operations:
// - Start/FromFunc/FromProducer: begin a chain from its first stage
// - Then/ThenFunc: append a stage M -> O to a Chain[I, M]
// - Append: append a stage that keeps the current type
// - Ensure: run a side effect on the current output without changing it
// - Finally: append a sink and return the finished pipeline
// - Pied: return the chain as a pied.Pied[I, O]
package chain
