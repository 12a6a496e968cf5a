package insightcache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/pkg/insight"
)

func TestCacheMissWhenClientNil(t *testing.T) {
	c := NewCache(nil, time.Minute, nil)
	_, ok := c.Get(context.Background(), uuid.New(), time.Now())
	if ok {
		t.Errorf("Get on a nil Redis client should always miss")
	}
}

func TestCacheSetIsNoOpWhenClientNil(t *testing.T) {
	c := NewCache(nil, time.Minute, nil)
	// Set must not panic even though there's nowhere to write.
	c.Set(context.Background(), uuid.New(), time.Now(), []insight.Card{{Type: insight.CardNewTopics, Title: "t", Data: []string{"a"}}})
}

func TestNilCacheReceiverIsSafe(t *testing.T) {
	var c *Cache
	if _, ok := c.Get(context.Background(), uuid.New(), time.Now()); ok {
		t.Errorf("Get on a nil *Cache should miss, not panic")
	}
	c.Set(context.Background(), uuid.New(), time.Now(), nil)
}

func TestKeyRotatesOnUpdatedAt(t *testing.T) {
	id := uuid.New()
	t1 := time.Now()
	t2 := t1.Add(time.Second)
	if key(id, t1) == key(id, t2) {
		t.Errorf("cache key must rotate when updated_at changes")
	}
}
