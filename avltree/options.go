package avltree

import "cmp"

type options[K cmp.Ordered] struct {
	onRotation func(kind RotationKind, key K)
}

func (o *options[K]) notifyRotation(kind RotationKind, key K) {
	if o.onRotation != nil {
		o.onRotation(kind, key)
	}
}

// Option configures a Tree.
type Option[K cmp.Ordered] interface {
	apply(*options[K])
}

type optionFunc[K cmp.Ordered] func(*options[K])

func (f optionFunc[K]) apply(o *options[K]) {
	f(o)
}

// WithRotationHook registers a callback invoked after every rebalancing
// rotation with the rotation direction and the key of the node the tree was
// rotated around. Purely observational; the hook must not touch the tree.
func WithRotationHook[K cmp.Ordered](hook func(kind RotationKind, key K)) Option[K] {
	return optionFunc[K](func(o *options[K]) {
		o.onRotation = hook
	})
}
