package auth

import "context"

type actorKey struct{}

// WithActor tags ctx with the authenticated operator name.
func WithActor(ctx context.Context, username string) context.Context {
	if username == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, username)
}

// ActorFromContext returns the operator name, or nil for anonymous requests.
func ActorFromContext(ctx context.Context) *string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return &v
	}
	return nil
}
