package uniqueid

import "context"

type sourceKeyType int

const sourceKey sourceKeyType = iota

// WithSource returns a cloned context.Context with the given Source injected
// into it.
func WithSource(ctx context.Context, source Source) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// FromContext returns the Source that WithSource has injected into the
// context.
func FromContext(ctx context.Context) Source {
	return ctx.Value(sourceKey).(Source)
}

// ID generates an identifier using the source from the given context.
func ID(ctx context.Context) (string, error) {
	return FromContext(ctx).ID()
}
