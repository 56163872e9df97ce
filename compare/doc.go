// Package compare measures how far a normalized occupancy curve lies from a
// reference curve.
//
// 🚀 Metrics
//
//   - RMSE:   root mean squared pointwise difference (equal lengths).
//   - MaxAbs: largest pointwise absolute difference (equal lengths).
//   - DTW:    Dynamic Time Warping distance, tolerant to local stretching of
//     the spatial axis; optional Sakoe–Chiba window and alignment path.
//
// ✨ DTW memory modes:
//   - FullMatrix keeps the (n+1)×(m+1) table and can backtrack the path.
//   - TwoRows keeps two rows, O(m) memory, distance only.
//
// ⚙️ Usage:
//
//	m, err := compare.Against(normalized, reference.Brachistochrone(n), compare.DefaultOptions())
//	fmt.Println(m.RMSE, m.DTW)
package compare
