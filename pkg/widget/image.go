package widget

import (
	"context"
	"sync"
)

// ImageState is the lifecycle state of a mounted image widget.
type ImageState uint8

const (
	// ImageLoading means resolution is still in flight; the host shows a
	// placeholder naming the file.
	ImageLoading ImageState = iota

	// ImageResolved means the asset was found; Location holds the resource.
	ImageResolved

	// ImageFailed means the asset could not be found; the host shows an
	// inline error in place of the placeholder.
	ImageFailed
)

// ImageInstance is the mounted, host-owned state for one image widget.
// Resolution runs detached from the recompute that created the instance;
// the document may change before it completes, so every result is gated on
// a generation counter and applied only if the instance is still current.
type ImageInstance struct {
	desc Image

	mu        sync.Mutex
	gen       uint64
	state     ImageState
	location  string
	discarded bool
	onChange  func()
}

// NewImageInstance creates a loading-state instance for desc.
// onChange, if non-nil, is called after every applied state transition.
func NewImageInstance(desc Image, onChange func()) *ImageInstance {
	return &ImageInstance{desc: desc, onChange: onChange}
}

// Descriptor returns the descriptor this instance was mounted for.
func (i *ImageInstance) Descriptor() Image {
	return i.desc
}

// Resolve starts asynchronous resolution of the instance's filename.
// A result is discarded silently when a newer Resolve call or a Discard
// has superseded it.
func (i *ImageInstance) Resolve(ctx context.Context, resolver AssetResolver) {
	i.mu.Lock()
	i.gen++
	gen := i.gen
	i.state = ImageLoading
	i.location = ""
	i.mu.Unlock()

	go func() {
		location, err := resolver.Resolve(ctx, i.desc.Filename)
		i.apply(gen, location, err)
	}()
}

// apply commits a resolution result if gen is still the current generation.
func (i *ImageInstance) apply(gen uint64, location string, err error) {
	i.mu.Lock()
	if i.discarded || gen != i.gen {
		i.mu.Unlock()
		return
	}
	if err != nil {
		i.state = ImageFailed
	} else {
		i.state = ImageResolved
		i.location = location
	}
	notify := i.onChange
	i.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Discard marks the instance as unmounted. Any in-flight resolution result
// arriving afterwards is dropped.
func (i *ImageInstance) Discard() {
	i.mu.Lock()
	i.discarded = true
	i.mu.Unlock()
}

// Snapshot returns the current state and resolved location.
func (i *ImageInstance) Snapshot() (ImageState, string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state, i.location
}
