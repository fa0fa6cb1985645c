package graph

import (
	"cogentcore.org/core/base/ordmap"
)

// registry holds the live resources of one kind in creation order.
type registry[T comparable] struct {
	items *ordmap.Map[T, struct{}]
}

func newRegistry[T comparable]() *registry[T] {
	return &registry[T]{items: ordmap.New[T, struct{}]()}
}

func (r *registry[T]) add(item T) {
	r.items.Add(item, struct{}{})
}

func (r *registry[T]) remove(item T) bool {
	return r.items.DeleteKey(item)
}

func (r *registry[T]) list() []T {
	return r.items.Keys()
}
