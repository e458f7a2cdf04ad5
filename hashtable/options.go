package hashtable

type options struct {
	size        int
	onCollision func(key string, bucket int)
}

func defaultOptions() options {
	return options{size: DefaultSize}
}

func (o *options) notifyCollision(key string, bucket int) {
	if o.onCollision != nil {
		o.onCollision(key, bucket)
	}
}

// Option configures a Table.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithSize sets the bucket count. The table never resizes afterwards.
// It panics if size is not positive.
func WithSize(size int) Option {
	if size <= 0 {
		panic("hashtable: size must be positive")
	}
	return optionFunc(func(o *options) {
		o.size = size
	})
}

// WithCollisionHook registers a callback invoked once for every insert that
// appends to a non-empty bucket. Purely observational; the hook must not
// touch the table.
func WithCollisionHook(hook func(key string, bucket int)) Option {
	return optionFunc(func(o *options) {
		o.onCollision = hook
	})
}
