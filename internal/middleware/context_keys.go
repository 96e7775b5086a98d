package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// actorCtxKey holds the authenticated actor (the JWT subject).
const actorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the Gin request context.
func GetActorFromContext(c *gin.Context) (string, bool) {
	return GetActorFromCtx(c.Request.Context())
}

// GetActorFromCtx retrieves the authenticated actor from a standard context.
func GetActorFromCtx(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorCtxKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}
