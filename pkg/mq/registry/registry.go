// Package registry tracks named batchers so that operational tooling can
// inspect and tune them without knowing their item types.
package registry

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-reqbatch/pkg/datastructs/shardedmap"
	"github.com/huynhanx03/go-reqbatch/pkg/hash"
	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
)

// ErrDuplicateName is returned by Register when the name is taken.
var ErrDuplicateName = errors.New("registry: batcher name already registered")

// Handle is the type-erased surface of a Batcher[T] that the operational
// tooling needs. *batcher.Batcher[T] satisfies it for every T.
type Handle interface {
	Name() string
	Len(prio batcher.Priority) int
	Empty(prio batcher.Priority) bool
	Clear()
	SetParams(maxBatch, minHoldOffMs, maxHoldOffMs uint)
	MaxRequests() uint
	MinHoldOff() uint
	MaxHoldOff() uint
	Stats() batcher.Stats
}

var _ Handle = (*batcher.Batcher[int])(nil)

// Registry maps batcher names to handles. All methods are safe for
// concurrent use.
type Registry struct {
	handles *shardedmap.Map[string, Handle]
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		handles: shardedmap.New[string, Handle](32, func(name string) uint64 {
			h, _ := hash.KeyToHash(name)
			return h
		}),
	}
}

// Register adds h under its name. Names are unique; a second Register with
// the same name fails without replacing the first.
func (r *Registry) Register(h Handle) error {
	if !r.handles.SetIfAbsent(h.Name(), h) {
		return errors.Wrap(ErrDuplicateName, h.Name())
	}
	return nil
}

// Deregister removes the handle under name. Unknown names are a no-op.
func (r *Registry) Deregister(name string) {
	r.handles.Del(name)
}

// Lookup returns the handle registered under name.
func (r *Registry) Lookup(name string) (Handle, bool) {
	return r.handles.Get(name)
}

// Names returns the registered names in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.handles.Len())
	r.handles.Do(func(name string, _ Handle) {
		names = append(names, name)
	})
	return names
}

// Len returns the number of registered batchers.
func (r *Registry) Len() int {
	return r.handles.Len()
}
