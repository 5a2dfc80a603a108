package logging

import "context"

type inputContextKey struct{}

// GetInput returns the input path stored in the context, or "" if there is none.
func GetInput(ctx context.Context) string {
	in, _ := ctx.Value(inputContextKey{}).(string)
	return in
}

// WithInput stores the path of the file being processed in the context.
func WithInput(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, inputContextKey{}, path)
}
