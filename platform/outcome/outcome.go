// Package outcome models best-effort results that may be complete or
// degraded. Callers branch on Degraded instead of inferring missing data
// from empty fields.
package outcome

// Result carries the data of a best-effort operation.
type Result[T any] struct {
	Succeeded bool
	Data      T
	Degraded  bool
	Reasons   []string
}

// Complete wraps data that was obtained in full.
func Complete[T any](data T) Result[T] {
	return Result[T]{Succeeded: true, Data: data}
}

// Partial wraps data that is usable but incomplete.
func Partial[T any](data T, reasons ...string) Result[T] {
	return Result[T]{Succeeded: true, Data: data, Degraded: true, Reasons: reasons}
}

// Degrade marks r as degraded with an extra reason.
func (r *Result[T]) Degrade(reason string) {
	r.Degraded = true
	r.Reasons = append(r.Reasons, reason)
}
