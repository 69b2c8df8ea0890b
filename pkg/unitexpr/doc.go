// Package unitexpr evaluates free-form arithmetic expressions that mix
// numbers with physical and informational units.
//
// The engine is a three-layer pipeline. A tokenizer converts the raw input
// into a positioned token sequence, resolving literals against registered
// units and constants. The units subpackage supplies the quantity algebra:
// exact decimal amounts paired with compound units, with conversion and
// comparison rules. The reducer is an iterative, position-aware
// operator-precedence engine that repeatedly locates the next reducible
// sub-expression, evaluates it, and splices the result back into the token
// stream, recording every intermediate step.
//
// Typical use:
//
//	factory := unitexpr.New()
//	result, err := factory.Parse("1000 MB/s -> GB/min")
//	if err != nil {
//		// a reduction was attempted and failed
//	}
//	if value, ok := result.Single(); ok {
//		fmt.Println(value) // 60 GB/min
//	} else {
//		// the input could not be fully reduced; result.Tokens() holds
//		// the residual stream
//	}
//
// A stalled reduction is not an error: Parse returns the residual tokens and
// the caller decides what to do with them. Errors are reserved for
// reductions that were attempted and failed, such as converting between
// incompatible units.
package unitexpr
