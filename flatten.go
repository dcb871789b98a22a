package seqkit

import (
	"iter"
	"reflect"
	"unicode/utf8"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/ds/dsset"
	"go.llib.dev/frameless/port/option"
)

// Flatten returns a lazy sequence that traverses an arbitrarily nested value depth-first
// and yields every scalar leaf in document order.
//
// A nested value is descended into when it is a slice, an array, a receivable channel
// or an iter.Seq[any] function, unless a protection rule marks it as atomic.
// Strings nested inside the structure are always atomic,
// no matter how the sequence was configured.
// Everything else, maps and plain funcs included, is yielded as-is.
//
// The top level value itself is exempt from protection rules:
// Flatten("foo") iterates the text by its runes,
// while "foo" found inside a slice stays in one piece.
// A non-iterable top level value produces a sequence with that single value in it,
// and a nil top level produces an empty sequence.
//
// The traversal keeps an explicit stack of suspended iterators instead of recursing,
// so nesting depth is bounded by memory, not by the call stack.
// Iterators opened along the way are released even when
// the consumer abandons the sequence early.
func Flatten(src any, opts ...FlattenOption) iter.Seq[any] {
	conf := option.ToConfig[FlattenConfig](opts)
	rules := conf.rules()
	return func(yield func(any) bool) {
		if src == nil {
			return
		}
		cur, ok := openCursor(src)
		if !ok {
			yield(src)
			return
		}
		var suspended stack[PullIter[any]]
		defer func() {
			_ = cur.Close()
			for {
				prev, ok := suspended.Pop()
				if !ok {
					break
				}
				_ = prev.Close()
			}
		}()
		for {
			if !cur.Next() {
				prev, ok := suspended.Pop()
				if !ok {
					return
				}
				_ = cur.Close()
				cur = prev
				continue
			}
			value := cur.Value()
			if rules.atomic(value) {
				if !yield(value) {
					return
				}
				continue
			}
			sub, ok := openCursor(value)
			if !ok {
				if !yield(value) {
					return
				}
				continue
			}
			suspended.Push(cur)
			cur = sub
		}
	}
}

// FlattenOption configures the protection rules of a Flatten traversal.
type FlattenOption option.Option[FlattenConfig]

type FlattenConfig struct {
	// ProtectedTypes contains the types whose values are yielded whole,
	// even when the value itself would be iterable.
	// An interface type in the set protects every value whose type implements it.
	ProtectedTypes dsset.Set[reflect.Type]
	// Predicates are checked against each nested value,
	// and any predicate reporting true keeps that value atomic.
	Predicates []func(v any) bool
}

// Configure merges the receiver into the target configuration,
// so protections given through a config value accumulate with the other options.
func (c FlattenConfig) Configure(t *FlattenConfig) {
	t.ProtectedTypes.Append(c.ProtectedTypes.ToSlice()...)
	t.Predicates = append(t.Predicates, c.Predicates...)
}

// ProtectType marks every nested value of type T as atomic.
func ProtectType[T any]() FlattenOption {
	return ProtectTypes(reflectkit.TypeOf[T]())
}

// ProtectTypes marks every nested value of the given types as atomic.
func ProtectTypes(types ...reflect.Type) FlattenOption {
	return option.Func[FlattenConfig](func(c *FlattenConfig) {
		c.ProtectedTypes.Append(types...)
	})
}

// ProtectFunc registers a predicate which can mark individual nested values as atomic.
// The predicate receives each non-string nested value before the traversal would descend into it.
func ProtectFunc(pred func(v any) bool) FlattenOption {
	return option.Func[FlattenConfig](func(c *FlattenConfig) {
		c.Predicates = append(c.Predicates, pred)
	})
}

// protectionRules is the per-call compiled form of a FlattenConfig.
// Interface entries of the type set are split out upfront,
// since they match by implementation rather than by identity.
type protectionRules struct {
	types      dsset.Set[reflect.Type]
	interfaces []reflect.Type
	predicates []func(v any) bool
}

func (c FlattenConfig) rules() protectionRules {
	var rules protectionRules
	rules.predicates = c.Predicates
	for _, typ := range c.ProtectedTypes.ToSlice() {
		if typ.Kind() == reflect.Interface {
			rules.interfaces = append(rules.interfaces, typ)
			continue
		}
		rules.types.Append(typ)
	}
	return rules
}

// atomic reports whether a nested value must be yielded whole.
// The checks run in a fixed order:
// text first, then the protected types, then the predicates.
// Whether the value is iterable at all is decided afterwards by openCursor.
func (rules protectionRules) atomic(v any) bool {
	typ := reflect.TypeOf(v)
	if typ != nil && typ.Kind() == reflect.String {
		return true
	}
	if typ != nil {
		if rules.types.Contains(typ) {
			return true
		}
		for _, iface := range rules.interfaces {
			if typ.Implements(iface) {
				return true
			}
		}
	}
	for _, pred := range rules.predicates {
		if pred(v) {
			return true
		}
	}
	return false
}

// stack holds the suspended cursors of a traversal, last in first out.
type stack[T any] []T

func (s *stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *stack[T]) Pop() (T, bool) {
	if len(*s) == 0 {
		return *new(T), false
	}
	index := len(*s) - 1
	v := (*s)[index]
	*s = (*s)[:index]
	return v, true
}

// openCursor attempts to obtain a pull iterator over a value.
// It reports false for values that cannot be iterated,
// which is what makes such values atomic during flattening.
func openCursor(v any) (PullIter[any], bool) {
	switch src := v.(type) {
	case iter.Seq[any]:
		return openSeqCursor(src)
	case func(func(any) bool):
		return openSeqCursor(src)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &indexCursor{src: rv}, true
	case reflect.String:
		return &runeCursor{src: rv.String()}, true
	case reflect.Chan:
		if rv.IsNil() || rv.Type().ChanDir() == reflect.SendDir {
			return nil, false
		}
		return &chanCursor{src: rv}, true
	default:
		return nil, false
	}
}

func openSeqCursor(src iter.Seq[any]) (PullIter[any], bool) {
	if src == nil {
		return nil, false
	}
	next, stop := iter.Pull(src)
	return &pullCursor{next: next, stop: stop}, true
}

// indexCursor walks a slice or an array by index.
type indexCursor struct {
	src   reflect.Value
	index int
	value any
}

func (c *indexCursor) Next() bool {
	if c.index >= c.src.Len() {
		return false
	}
	c.value = c.src.Index(c.index).Interface()
	c.index++
	return true
}

func (c *indexCursor) Value() any   { return c.value }
func (c *indexCursor) Close() error { return nil }
func (c *indexCursor) Err() error   { return nil }

// runeCursor decodes a string rune by rune,
// without materialising the whole rune slice.
type runeCursor struct {
	src   string
	index int
	value rune
}

func (c *runeCursor) Next() bool {
	if c.index >= len(c.src) {
		return false
	}
	char, size := utf8.DecodeRuneInString(c.src[c.index:])
	c.value = char
	c.index += size
	return true
}

func (c *runeCursor) Value() any   { return c.value }
func (c *runeCursor) Close() error { return nil }
func (c *runeCursor) Err() error   { return nil }

// chanCursor receives from a channel until the channel is closed.
type chanCursor struct {
	src    reflect.Value
	value  any
	closed bool
}

func (c *chanCursor) Next() bool {
	if c.closed {
		return false
	}
	value, ok := c.src.Recv()
	if !ok {
		c.closed = true
		return false
	}
	c.value = value.Interface()
	return true
}

func (c *chanCursor) Value() any { return c.value }

func (c *chanCursor) Close() error {
	c.closed = true
	return nil
}

func (c *chanCursor) Err() error { return nil }

// pullCursor drives an iter.Seq[any] through the pull protocol of the iter package.
type pullCursor struct {
	next    func() (any, bool)
	stop    func()
	value   any
	stopped bool
}

func (c *pullCursor) Next() bool {
	if c.stopped {
		return false
	}
	value, ok := c.next()
	if !ok {
		return false
	}
	c.value = value
	return true
}

func (c *pullCursor) Value() any { return c.value }

func (c *pullCursor) Close() error {
	if c.stopped {
		return nil
	}
	c.stopped = true
	c.stop()
	return nil
}

func (c *pullCursor) Err() error { return nil }
