// Package utils
package utils

func ReverseForEach[T any](slice []T, f func(index int, value T)) {
	for i := len(slice) - 1; i >= 0; i-- {
		f(i, slice[i])
	}
}

// SumBy adds up the value selected from every element
func SumBy[T any](src []*T, selector func(element *T) int64) (total int64) {
	for _, v := range src {
		total += selector(v)
	}
	return
}
