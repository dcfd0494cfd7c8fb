package ptr

// Ptr повертає вказівник на передане значення
func Ptr[T any](v T) *T {
	return &v
}

// Deref повертає значення за вказівником або zero value, якщо вказівник nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
