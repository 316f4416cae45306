package entities

// Derived is a value the service computes unless the caller overrides it.
// An override is stored verbatim and always wins over the computed value.
type Derived[T any] struct {
	Computed T  `json:"computed"`
	Override *T `json:"override,omitempty"`
}

// Computed returns a Derived holding only a computed value.
func Computed[T any](v T) Derived[T] {
	return Derived[T]{Computed: v}
}

// Value returns the override if present, otherwise the computed value.
func (d Derived[T]) Value() T {
	if d.Override != nil {
		return *d.Override
	}
	return d.Computed
}

// IsOverridden reports whether an override is set.
func (d Derived[T]) IsOverridden() bool {
	return d.Override != nil
}

// WithComputed replaces the computed value and keeps any override.
func (d Derived[T]) WithComputed(v T) Derived[T] {
	d.Computed = v
	return d
}

// WithOverride sets the override. A nil v keeps the current one.
func (d Derived[T]) WithOverride(v *T) Derived[T] {
	if v != nil {
		o := *v
		d.Override = &o
	}
	return d
}

// ClearOverride drops the override so the computed value applies again.
func (d Derived[T]) ClearOverride() Derived[T] {
	d.Override = nil
	return d
}
