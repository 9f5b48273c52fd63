package enrich

// Result is the outcome of one item in a concurrent batch: either a value
// or the error that replaced it.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the item succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// OrDefault returns the value on success, def otherwise.
func (r Result[T]) OrDefault(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}
