// Package outcome provides a result type for stages that can fail.
//
// Pipelines built with pied never look at outputs, so a failing stage
// reports failure through its output value. Result[T] is such a value:
// Success, Fail and Cancel build it, Try wraps a (T, error) function into a
// stage producing it, and Finally reduces it to a plain value at the end of
// a pipeline. Every result carries a uuid and a UTC creation time.
package outcome
