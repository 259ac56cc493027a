package types

func (s *Array[T]) Len() int           { return len(s.Data) }
func (s *Array[T]) Swap(i, j int)      { Swap(s.Data, i, j) }
func (s *Array[T]) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }

// Swap exchanges values[i] and values[j].
func Swap[T any](values []T, i, j int) {
	values[i], values[j] = values[j], values[i]
}
