// Package options provides a small generic helper for building
// functional options over any configuration type.
package options

// Option configures a value of type T and may reject an invalid setting.
type Option[T any] func(T) error

// NoError wraps a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs the given options against target in order, stopping at the
// first option that returns an error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
