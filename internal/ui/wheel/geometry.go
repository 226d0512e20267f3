package wheel

import "math"

// OffsetForIndex returns the scroll offset that centres index.
func OffsetForIndex(index, itemHeight int) float64 {
	if index <= 0 || itemHeight <= 0 {
		return 0
	}
	return float64(index * itemHeight)
}

// NearestIndex maps a scroll offset to the closest option index. Ties round
// toward the larger index. The result is clamped to [0, count-1], or -1 when
// there are no options.
func NearestIndex(offset float64, itemHeight, count int) int {
	if count <= 0 {
		return -1
	}
	if itemHeight <= 0 {
		itemHeight = 1
	}
	idx := int(math.Floor(offset/float64(itemHeight) + 0.5))
	return clampIndex(idx, count)
}

func clampIndex(idx, count int) int {
	if count <= 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx > count-1 {
		return count - 1
	}
	return idx
}

func maxOffset(itemHeight, count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64((count - 1) * itemHeight)
}

func clampOffset(offset float64, itemHeight, count int) float64 {
	if offset < 0 {
		return 0
	}
	if limit := maxOffset(itemHeight, count); offset > limit {
		return limit
	}
	return offset
}

func roundOffset(offset float64) int {
	return int(math.Floor(offset + 0.5))
}
