// Package fit implements the ordinary least-squares fitting engine: fitting a
// straight line y = a·x + b to paired observations, generating predictions,
// and scoring goodness of fit.
//
// All operations are pure functions over in-memory slices. Nothing in this
// package holds state across calls, performs I/O, or touches the process, so
// every function is safe for concurrent use from independent invocations.
//
// # Basic Usage
//
// Fit a line and score it:
//
//	line, err := fit.Fit(x, y)
//	if err != nil {
//	    return err
//	}
//	r2 := fit.RSquared(x, y, line.Slope, line.Intercept)
//	preds := line.Predict(x)
//
// # Failure Modes
//
// Fit refuses to produce a result when a precondition fails, signalling which
// one through a small closed set of sentinel errors:
//
//   - ErrLengthMismatch: x and y have different lengths
//   - ErrInsufficientData: fewer than two observations
//   - ErrDegenerateInput: all x values identical (slope undefined)
//
// Callers match them with errors.Is. The engine never retries, never
// terminates the process, and never writes to a console; translating failures
// into user-facing behavior is the enclosing shell's job.
package fit
