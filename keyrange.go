package lrumap

type boundKind uint8

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// KeyRange describes a key interval for OrderedMap range queries. Each end
// is independently inclusive, exclusive, or unbounded. Construct ranges with
// the Range* functions; the zero value is the full range.
type KeyRange[K any] struct {
	lower, upper         K
	lowerKind, upperKind boundKind
}

// RangeFull matches every key.
func RangeFull[K any]() KeyRange[K] {
	return KeyRange[K]{}
}

// RangeInclusive matches min <= key <= max.
func RangeInclusive[K any](min, max K) KeyRange[K] {
	return KeyRange[K]{lower: min, lowerKind: boundIncluded, upper: max, upperKind: boundIncluded}
}

// Range matches min <= key < max (half-open).
func Range[K any](min, max K) KeyRange[K] {
	return KeyRange[K]{lower: min, lowerKind: boundIncluded, upper: max, upperKind: boundExcluded}
}

// RangeFrom matches key >= min.
func RangeFrom[K any](min K) KeyRange[K] {
	return KeyRange[K]{lower: min, lowerKind: boundIncluded}
}

// RangeAbove matches key > min.
func RangeAbove[K any](min K) KeyRange[K] {
	return KeyRange[K]{lower: min, lowerKind: boundExcluded}
}

// RangeTo matches key < max.
func RangeTo[K any](max K) KeyRange[K] {
	return KeyRange[K]{upper: max, upperKind: boundExcluded}
}

// RangeToInclusive matches key <= max.
func RangeToInclusive[K any](max K) KeyRange[K] {
	return KeyRange[K]{upper: max, upperKind: boundIncluded}
}

func (r KeyRange[K]) hasLower() bool { return r.lowerKind != boundUnbounded }

// skipsLower reports whether key must be skipped at the lower edge of a scan
// that started at the lower bound: only keys equal to an exclusive bound.
func (r KeyRange[K]) skipsLower(key K, less func(a, b K) bool) bool {
	return r.lowerKind == boundExcluded && !less(r.lower, key)
}

// pastUpper reports whether key lies beyond the upper bound, ending a scan.
func (r KeyRange[K]) pastUpper(key K, less func(a, b K) bool) bool {
	switch r.upperKind {
	case boundUnbounded:
		return false
	case boundIncluded:
		return less(r.upper, key)
	default:
		return !less(key, r.upper)
	}
}
