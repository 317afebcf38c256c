package gallery

import (
	"errors"
	"fmt"
)

// ErrNoImages is returned at initialization when the image source holds
// no images at all. It is fatal: the gallery cannot start empty.
var ErrNoImages = errors.New("gallery: image source is empty")

// LoadError wraps a texture load or decode failure for one image index.
// On the navigation path it is delivered to the caller; on the preload
// path it is logged and swallowed.
type LoadError struct {
	Index int
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("gallery: loading image %d: %v", e.Index, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
