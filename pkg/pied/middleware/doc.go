// Package middleware decorates pied stages without changing what they
// compute. Log writes one record per call with the stage name and duration;
// the logger travels on the context so a whole pipeline shares it.
package middleware
