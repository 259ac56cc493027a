package sorter

import "errors"

// ErrUnknownAlgorithm indicates a name or tag that does not select any sorter.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")
