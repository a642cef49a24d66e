package wml

// Updatable is implemented by property types that support the
// right-biased merge used to cascade style-derived formatting into
// direct formatting. UpdateWith returns a new value; neither receiver
// nor argument is mutated.
type Updatable[T any] interface {
	UpdateWith(other T) T
}

// pickOpt right-biases two optional fields: the override wins when
// present, otherwise the base survives.
func pickOpt[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

// mergeOpt merges two optional fields whose type itself supports
// UpdateWith. Both present merges field-wise; otherwise the present one
// survives.
func mergeOpt[T Updatable[T]](base, override *T) *T {
	if base != nil && override != nil {
		merged := (*base).UpdateWith(*override)
		return &merged
	}
	return pickOpt(base, override)
}
