package donor

// TupleItems exposes a tuple's backing slice to external tests.
func TupleItems(t Tuple) []any { return t.items }
