package services

import (
	"context"
	"sync"
	"time"

	"contacts-api/internal/utils"
)

const avatarRemoveTimeout = 30 * time.Second

// AvatarCleaner removes replaced or orphaned avatars in the background.
// Failures are logged and never reach the caller.
type AvatarCleaner struct {
	store AvatarStore
	wg    sync.WaitGroup
}

func NewAvatarCleaner(store AvatarStore) *AvatarCleaner {
	return &AvatarCleaner{store: store}
}

// Schedule starts the removal of avatar when the store manages it and
// reports whether it did.
func (c *AvatarCleaner) Schedule(avatar string) bool {
	if avatar == "" || !c.store.Owns(avatar) {
		return false
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), avatarRemoveTimeout)
		defer cancel()
		if err := c.store.Remove(ctx, avatar); err != nil {
			utils.LogDebug("Avatar cleanup failed for %s: %v", avatar, err)
		}
	}()
	return true
}

// Wait blocks until every scheduled removal has finished.
func (c *AvatarCleaner) Wait() {
	c.wg.Wait()
}
