package ranges

// Overlaps reports whether the inclusive ranges [min1,max1] and [min2,max2]
// intersect. A nil max means the range is unbounded above.
//
// Rules:
//   - both unbounded: always overlap, whatever the mins
//   - one unbounded: overlap iff its min is <= the other range's max
//   - both bounded: overlap iff min1 <= max2 && min2 <= max1
func Overlaps(min1 int, max1 *int, min2 int, max2 *int) bool {
	if max1 == nil && max2 == nil {
		return true
	}
	if max1 == nil {
		return min1 <= *max2
	}
	if max2 == nil {
		return min2 <= *max1
	}
	return min1 <= *max2 && min2 <= *max1
}

// Contains reports whether value falls inside the inclusive range [min,max],
// nil max meaning unbounded above.
func Contains(min int, max *int, value int) bool {
	if value < min {
		return false
	}
	return max == nil || value <= *max
}
