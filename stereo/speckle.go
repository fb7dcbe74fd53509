package stereo

import "slices"

// neighbors4 are the orthogonal offsets used for region growing.
var neighbors4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FilterSpeckles removes small isolated regions from the map in place.
//
// A region is a 4-connected set of pixels whose neighboring disparities
// differ by at most maxDiff. Every region of at most maxSize pixels is
// overwritten with the smallest disparity found on its outer border, which
// pushes speckles back to the surrounding background. A region with no
// outer border (the whole map) is left unchanged.
//
// Returns the number of pixels changed. maxSize ≤ 0 is a no-op.
//
// Time:   O(W·H)
// Memory: O(W·H) for the region labels and the BFS queue.
func (m *DisparityMap) FilterSpeckles(maxSize, maxDiff int) int {
	if maxSize <= 0 {
		return 0
	}
	if maxDiff < 0 {
		maxDiff = 0
	}

	total := m.width * m.height
	src := slices.Clone(m.data) // regions are grown on the unfiltered map
	label := make([]int, total) // 0 = unvisited, else region id
	queue := make([]int, 0, 64)
	changed, region := 0, 0

	for start := 0; start < total; start++ {
		if label[start] != 0 {
			continue
		}
		region++

		// BFS to collect the region
		queue = append(queue[:0], start)
		label[start] = region
		fill, bordered := 0, false
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%m.width, u/m.width
			du := src[u]
			for _, off := range neighbors4 {
				vx, vy := ux+off[0], uy+off[1]
				if vx < 0 || vx >= m.width || vy < 0 || vy >= m.height {
					continue
				}
				v := vy*m.width + vx
				dv := src[v]
				if absInt(dv-du) > maxDiff {
					if !bordered || dv < fill {
						fill, bordered = dv, true
					}
					continue
				}
				if label[v] == 0 {
					label[v] = region
					queue = append(queue, v)
				}
			}
		}

		if len(queue) > maxSize || !bordered {
			continue
		}
		for _, u := range queue {
			m.data[u] = fill
		}
		changed += len(queue)
	}

	return changed
}
