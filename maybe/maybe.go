/*
Package maybe implements an option type.

Maybe values are used throughout csskit wherever the parse tree has to keep
the difference between “not specified” and “specified as the default value”,
e.g. for the descriptors of an @counter-style rule or for the two ends of a
media feature range.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into an option.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the empty option for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok is true, Nothing otherwise.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the wrapped value or def, if m is Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get unpacks m in the comma-ok style.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true for a nil Maybe as well as for Nothing.
// The zero value of a struct field of type Maybe[T] is nil, so this is the
// test to use for optional fields.
func IsNothing[T any](m Maybe[T]) bool {
	return m == nil || !m.IsJust()
}

// Value returns the value of an optional field together with a flag,
// treating a nil Maybe as Nothing.
func Value[T any](m Maybe[T]) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	return m.Get()
}

// OrElse returns the value of an optional field or def, treating a nil Maybe
// as Nothing.
func OrElse[T any](m Maybe[T], def T) T {
	if m == nil {
		return def
	}
	return m.WithDefault(def)
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		v = f(v)
		return Just[T](v)
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
