// Package field builds the deterministic spatial bias ("time dilation") field
// that steers the random walk in package walk.
//
// 🚀 What is the field?
//
//	A read-only sequence of LENGTH values, linearly spaced from 0 at position 0
//	to GRADIENT at position LENGTH-1 (both endpoints inclusive). The walk step
//	adds (or subtracts) the local value to a uniform draw, so larger values bias
//	particles more strongly.
//
// ✨ Key features:
//   - raw linear gradient: field[i] = GRADIENT * i/(LENGTH-1)
//   - normalized variant (WithNormalize): the whole sequence divided by its maximum
//   - pure and deterministic: same inputs ⇒ identical field
//
// ⚙️ Usage:
//
//	f, err := field.Linear(80, 0.5)
//	if err != nil {
//	  // ErrBadLength, ErrBadGradient, ErrDegenerate
//	}
//	v, ok := f.At(10)
//
// Complexity:
//
//   - Time:   O(LENGTH)
//   - Memory: O(LENGTH)
package field
