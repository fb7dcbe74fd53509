// Package stereodp is a scanline dynamic-programming stereo toolkit, from
// dense cost storage to full disparity maps.
//
// 🚀 What is stereodp?
//
//	A small, dependency-light set of packages that brings together:
//		• Dense cost matrices with a strict NaN/Inf policy and DP kernels
//		• Scanline DP solvers: Reference, Vectorized (bit-identical) and
//		  Exhaustive (verification)
//		• A stereo pipeline: image loading, unary and pairwise cost
//		  builders, concurrent per-row matching, speckle filtering and
//		  gray or heat-map output
//		• A CLI (cmd/stereodp) with solve, disparity and verify commands
//
// ✨ Why choose stereodp?
//
//   - Deterministic – the lowest disparity index always wins ties
//   - Verified – both DP strategies are checked against each other and
//     against brute force
//   - Pure Go – no cgo
//
// Packages:
//
//	matrix/            - Dense storage, validators, broadcast and reduction kernels
//	scanline/          - Solver interface, strategies, PathCost, Equivalent
//	stereo/            - image I/O, cost builders, Matcher, DisparityMap
//	internal/config    - YAML configuration of the CLI
//	internal/logging   - slog logger construction
//	internal/metrics   - Prometheus instrumentation of solvers
//	internal/costio    - JSON/YAML cost-file loading
//	cmd/stereodp       - command-line entry point
package stereodp
