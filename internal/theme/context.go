package theme

import (
	"context"
)

type contextKey struct{}

// WithTheme stores a theme inside the context for a subtree of calls.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext retrieves the theme carried by the context, falling back to
// the process-wide ambient theme when none is present.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Current()
}
