package seqfn

// This file is the pipelining layer: plumbing for writing a computation as
// a left-to-right chain of stages, plus the placeholder adapters that decide
// where the piped value lands in a multi-argument call.
//
// A stage is any func(T) R. Multi-argument functions are turned into stages
// with the adapters below:
//
//	FirstArg(f, a)      // piped value becomes f's first argument: f(v, a)
//	SecondArg(f, a)     // explicit placeholder in position 2:     f(a, v)
//	Dup(f)              // placeholder used twice:                 f(v, v)
//	FirstArgBy(f, g)    // placeholder inside a sub-expression,
//	                    // first-argument rule still applies:      f(v, g(v))
//	Block(f)            // opaque escape: f decides placement itself,
//	                    // no first-argument insertion
//
// Chains evaluate eagerly, left to right: Pipe3(v, f, g, h) == h(g(f(v))).

// Pipe applies fns to value in order. All stages must accept and return the
// same type; use Pipe2..Pipe5 when the type changes along the chain.
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, fn := range fns {
		out = fn(out)
	}
	return out
}

// Pipe2 applies two stages left to right: g(f(v)).
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Pipe3 applies three stages left to right: h(g(f(v))).
func Pipe3[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

// Pipe4 applies four stages left to right.
func Pipe4[A, B, C, D, E any](v A, f func(A) B, g func(B) C, h func(C) D, k func(D) E) E {
	return k(h(g(f(v))))
}

// Pipe5 applies five stages left to right.
func Pipe5[A, B, C, D, E, F any](v A, f func(A) B, g func(B) C, h func(C) D, k func(D) E, m func(E) F) F {
	return m(k(h(g(f(v)))))
}

// Comp is left-to-right function composition: Comp(f, g)(v) == g(f(v)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Identity returns its argument unchanged. It is the unit of Comp and the
// no-op stage of a Pipe chain.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// FirstArg adapts a two-argument function into a stage by fixing its second
// argument; the piped value becomes the first. FirstArg(f, a)(v) == f(v, a).
func FirstArg[T, A, R any](f func(T, A) R, a A) func(T) R {
	return func(v T) R {
		return f(v, a)
	}
}

// FirstArg3 is FirstArg for three-argument functions:
// FirstArg3(f, a, b)(v) == f(v, a, b).
func FirstArg3[T, A, B, R any](f func(T, A, B) R, a A, b B) func(T) R {
	return func(v T) R {
		return f(v, a, b)
	}
}

// FirstArg4 is FirstArg for four-argument functions.
func FirstArg4[T, A, B, C, R any](f func(T, A, B, C) R, a A, b B, c C) func(T) R {
	return func(v T) R {
		return f(v, a, b, c)
	}
}

// FirstArgBy is FirstArg with a computed second argument: the piped value
// still lands in position 1, and argFn derives the second argument from it.
// FirstArgBy(f, g)(v) == f(v, g(v)).
func FirstArgBy[T, A, R any](f func(T, A) R, argFn func(T) A) func(T) R {
	return func(v T) R {
		return f(v, argFn(v))
	}
}

// SecondArg places the piped value in a two-argument function's second
// position instead of the first: SecondArg(f, a)(v) == f(a, v).
func SecondArg[A, T, R any](f func(A, T) R, a A) func(T) R {
	return func(v T) R {
		return f(a, v)
	}
}

// ThirdArg places the piped value in a three-argument function's third
// position: ThirdArg(f, a, b)(v) == f(a, b, v).
func ThirdArg[A, B, T, R any](f func(A, B, T) R, a A, b B) func(T) R {
	return func(v T) R {
		return f(a, b, v)
	}
}

// Dup feeds the piped value to both parameters of a two-argument function:
// Dup(f)(v) == f(v, v).
func Dup[T, R any](f func(T, T) R) func(T) R {
	return func(v T) R {
		return f(v, v)
	}
}

// Block marks a stage whose body places the piped value itself, at any
// depth, with no first-argument insertion. It is the identity on stages;
// its value is making the escape from the FirstArg convention explicit at
// the call site.
func Block[T, R any](f func(T) R) func(T) R {
	return f
}
