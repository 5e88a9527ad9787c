// Package redistest provides an in-memory Cmdable fake for exercising
// redis-backed code without a running server.
package redistest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fake is an in-memory implementation of the redis command surface the
// application uses. It is safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	strings map[string]string
	sets    map[string]map[string]struct{}
}

func NewFake() *Fake {
	return &Fake{
		strings: make(map[string]string),
		sets:    make(map[string]map[string]struct{}),
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (f *Fake) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *Fake) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strings[key] = asString(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *Fake) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.strings[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.strings[key] = asString(value)
	return redis.NewBoolResult(true, nil)
}

func (f *Fake) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.strings[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *Fake) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals := make([]any, 0, len(keys))
	for _, k := range keys {
		if v, ok := f.strings[k]; ok {
			vals = append(vals, v)
		} else {
			vals = append(vals, nil)
		}
	}
	return redis.NewSliceResult(vals, nil)
}

func (f *Fake) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, k := range keys {
		if _, ok := f.strings[k]; ok {
			delete(f.strings, k)
			removed++
		}
		if _, ok := f.sets[k]; ok {
			delete(f.sets, k)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *Fake) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found int64
	for _, k := range keys {
		if _, ok := f.strings[k]; ok {
			found++
			continue
		}
		if _, ok := f.sets[k]; ok {
			found++
		}
	}
	return redis.NewIntResult(found, nil)
}

func (f *Fake) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	var added int64
	for _, m := range members {
		s := asString(m)
		if _, ok := set[s]; !ok {
			set[s] = struct{}{}
			added++
		}
	}
	return redis.NewIntResult(added, nil)
}

func (f *Fake) SRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.sets[key]
	if !ok {
		return redis.NewIntResult(0, nil)
	}
	var removed int64
	for _, m := range members {
		s := asString(m)
		if _, ok := set[s]; ok {
			delete(set, s)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *Fake) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.sets[key]
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return redis.NewStringSliceResult(members, nil)
}
