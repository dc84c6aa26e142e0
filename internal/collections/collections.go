package collections

// Contains reports whether elem is present in elements.
func Contains[T comparable](elem T, elements []T) bool {
	for _, e := range elements {
		if elem == e {
			return true
		}
	}
	return false
}
