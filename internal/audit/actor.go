package audit

import "context"

// SystemActor attributes writes that happen outside any authenticated session.
const SystemActor = "system"

type actorKey struct{}

// WithActor stamps the session actor onto a request context; the capture
// callbacks read it back through gorm's statement context.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
			return v
		}
	}
	return SystemActor
}
