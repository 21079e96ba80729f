package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorFrom(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, SystemActor, ActorFrom(ctx))
	assert.Equal(t, SystemActor, ActorFrom(nil))

	ctx = WithActor(ctx, "8f14e45f-ceea-4e4c-95f0-0d9a61f3b904")
	assert.Equal(t, "8f14e45f-ceea-4e4c-95f0-0d9a61f3b904", ActorFrom(ctx))

	// blank actor falls back to system
	assert.Equal(t, SystemActor, ActorFrom(WithActor(context.Background(), "")))
}
