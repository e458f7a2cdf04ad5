// Package avltree provides a self-balancing binary search tree.
//
// The tree keeps records sorted by key and guarantees O(log n) insert,
// delete and exact search, with every node's balance factor held in
// {-1, 0, 1} after each public operation. In-order traversal yields keys in
// non-decreasing order, which is what makes it the ordered index of the
// catalog engine.
package avltree

import (
	"cmp"
	"iter"
)

// RotationKind identifies the direction of a rebalancing rotation.
type RotationKind string

const (
	RotationLeft  RotationKind = "left"
	RotationRight RotationKind = "right"
)

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	height int
}

// Tree is an AVL tree mapping ordered keys to values.
// A duplicate key overwrites the stored value rather than creating a second
// node. The zero operations are not safe for concurrent use; callers
// serialize access.
type Tree[K cmp.Ordered, V any] struct {
	root    *node[K, V]
	size    int
	options options[K]
}

// New creates an empty Tree.
func New[K cmp.Ordered, V any](opts ...Option[K]) *Tree[K, V] {
	t := &Tree[K, V]{}
	for _, opt := range opts {
		opt.apply(&t.options)
	}
	return t
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Insert stores value under key, overwriting any existing value for the same
// key, and rebalances the path back to the root. It never fails.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.root = t.insert(t.root, key, value)
}

// Delete removes the node with an exact key match, if present; otherwise it
// is a no-op.
func (t *Tree[K, V]) Delete(key K) {
	t.root = t.delete(t.root, key)
}

// Search returns the value stored under key, or false if the key is absent.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// All returns an in-order iterator over the tree, ascending by key.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

// Range returns an in-order iterator over all entries with key in the
// inclusive interval [lo, hi].
func (t *Tree[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, func(k K, v V) bool {
			if k < lo || k > hi {
				return true
			}
			return yield(k, v)
		})
	}
}

func inorder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, yield) {
		return false
	}
	if !yield(n.key, n.value) {
		return false
	}
	return inorder(n.right, yield)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight restructures around y; ownership of y moves under its former
// left child.
func (t *Tree[K, V]) rotateRight(y *node[K, V]) *node[K, V] {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	y.height = 1 + max(height(y.left), height(y.right))
	x.height = 1 + max(height(x.left), height(x.right))

	t.options.notifyRotation(RotationRight, y.key)
	return x
}

// rotateLeft restructures around x; ownership of x moves under its former
// right child.
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))

	t.options.notifyRotation(RotationLeft, x.key)
	return y
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		t.size++
		return &node[K, V]{key: key, value: value, height: 1}
	}

	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, value)
	case key > n.key:
		n.right = t.insert(n.right, key, value)
	default:
		// Last writer wins on duplicate keys.
		n.value = value
		return n
	}

	n.height = 1 + max(height(n.left), height(n.right))
	bf := balance(n)

	// The four rotation cases, selected by the inserted key's side.
	switch {
	case bf > 1 && key < n.left.key: // left-left
		return t.rotateRight(n)
	case bf < -1 && key > n.right.key: // right-right
		return t.rotateLeft(n)
	case bf > 1 && key > n.left.key: // left-right
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case bf < -1 && key < n.right.key: // right-left
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}
	return n
}

func minNode[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	switch {
	case key < n.key:
		n.left = t.delete(n.left, key)
	case key > n.key:
		n.right = t.delete(n.right, key)
	default:
		if n.left == nil {
			t.size--
			return n.right
		}
		if n.right == nil {
			t.size--
			return n.left
		}
		// Two children: replace with the in-order successor, then delete the
		// successor's original node out of the right subtree.
		succ := minNode(n.right)
		n.key = succ.key
		n.value = succ.value
		n.right = t.delete(n.right, succ.key)
	}

	n.height = 1 + max(height(n.left), height(n.right))
	bf := balance(n)

	// Deletion selects the rotation case by the heavier child's balance
	// factor; there is no inserted key to compare against.
	switch {
	case bf > 1 && balance(n.left) >= 0: // left-left
		return t.rotateRight(n)
	case bf > 1 && balance(n.left) < 0: // left-right
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case bf < -1 && balance(n.right) <= 0: // right-right
		return t.rotateLeft(n)
	case bf < -1 && balance(n.right) > 0: // right-left
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}
	return n
}
