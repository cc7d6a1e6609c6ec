/*
Package result implements a result type for computations which may fail.

csskit uses results for the items produced by rule iterators: each item is
either a parsed rule or the first error encountered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From packs a value/error pair, as returned by most Go functions, into a
// result. A non-nil error wins.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Get unpacks r into the usual Go value/error pair.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
