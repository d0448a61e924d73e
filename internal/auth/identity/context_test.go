package identity

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSlot_Lifecycle(t *testing.T) {
	ctx, slot := NewContext(context.Background())

	_, ok := slot.Get()
	assert.False(t, ok, "fresh slot must be empty")

	slot.Set("u1")
	userID, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)

	fromCtx, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, slot, fromCtx)

	slot.Clear()
	_, ok = slot.Get()
	assert.False(t, ok, "cleared slot must be empty")
}

func TestSlot_EmptyIdentityIsAbsent(t *testing.T) {
	_, slot := NewContext(context.Background())

	slot.Set("")

	_, ok := slot.Get()
	assert.False(t, ok)
}

func TestFromContext_NotScoped(t *testing.T) {
	slot, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, slot)
}

func TestSlot_IsolatedPerRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	const requests = 50

	var wg sync.WaitGroup
	errs := make(chan error, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			ctx, slot := NewContext(context.Background())
			want := fmt.Sprintf("user-%d", i)
			slot.Set(want)

			got, _ := FromContext(ctx)
			userID, ok := got.Get()
			if !ok || userID != want {
				errs <- fmt.Errorf("request %d observed identity %q", i, userID)
			}
			got.Clear()
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
