// Package stereo turns a rectified left/right image pair into a dense
// disparity map by solving every row independently with the scanline DP.
//
// 🚀 Pipeline:
//
//  1. LoadGray reads each image (any format imaging can decode), optionally
//     blurs it with a Gaussian prefilter, and converts it to 8-bit gray.
//  2. For every row y, UnaryCosts compares left[x] with right[x-d] for
//     d = 0..maxDisparity and builds the D×P unary matrix.
//  3. One D×D pairwise matrix (Potts, Linear, TruncatedLinear or Quadratic)
//     is shared by all rows.
//  4. Matcher solves the rows concurrently and assembles a DisparityMap,
//     which can be rendered as gray or as a color heat map and saved.
//
// ⚙️ Usage:
//
//	left, _ := stereo.LoadGray("left.png", 0)
//	right, _ := stereo.LoadGray("right.png", 0)
//	m, _ := stereo.NewMatcher(32, stereo.WithPairwise(stereo.ModelTruncatedLinear, 4, 2))
//	dm, err := m.Match(ctx, left, right)
//	_ = dm.Save("disparity.png", true)
//
// Conventions:
//
//	Disparity d at column x pairs left[x] with right[x-d]. Taps with x-d < 0
//	fall outside the right image and cost the occlusion constant instead.
package stereo
