// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import "sync"

// LoadState is the lifecycle state of one lazily loaded image.
type LoadState int

const (
	// StateIdle means the image slot has not yet neared the viewport and no
	// fetch was started.
	StateIdle LoadState = iota

	// StateLoading means the fetch was started and has not completed.
	StateLoading

	// StateLoaded is terminal: the fetch completed successfully.
	StateLoaded

	// StateErrored is terminal: the fetch failed. The resource is never
	// retried automatically.
	StateErrored
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Hooks carries optional load-outcome callbacks. Each hook is invoked at
// most once, at the corresponding terminal transition.
type Hooks struct {
	OnLoad  func()
	OnError func()
}

// ImageView is the declarative render state of a LazyImage: which ARIA role
// the element carries, its accessible label, and whether a placeholder is
// shown instead of the real image.
type ImageView struct {
	State       LoadState
	Role        string
	Label       string
	URL         string
	Placeholder bool
}

// LazyImage defers loading a single image until its slot is near-visible,
// then tracks the outcome. The transition out of idle happens exactly once
// per instance; losing visibility afterwards neither cancels nor restarts
// the load.
type LazyImage struct {
	mu       sync.Mutex
	img      Image
	state    LoadState
	hooks    Hooks
	observer *Observer
}

// NewLazyImage builds the state machine for img and starts visibility
// observation. With a nil detector the observer fails open and the image
// moves to StateLoading immediately.
func NewLazyImage(img Image, det Detector, cfg ObserverConfig, hooks Hooks) *LazyImage {
	li := &LazyImage{img: img, state: StateIdle, hooks: hooks}
	li.observer = NewObserver(det, cfg, li.becomeVisible)

	return li
}

// becomeVisible is the sticky visibility signal: the first call starts the
// load, later calls are ignored.
func (li *LazyImage) becomeVisible() {
	li.mu.Lock()
	defer li.mu.Unlock()

	if li.state == StateIdle {
		li.state = StateLoading
	}
}

// FinishLoad records the fetch outcome. Only the first completion after the
// load started has any effect; both resulting states are terminal.
func (li *LazyImage) FinishLoad(err error) {
	li.mu.Lock()

	if li.state != StateLoading {
		li.mu.Unlock()

		return
	}

	var hook func()

	if err != nil {
		li.state = StateErrored
		hook = li.hooks.OnError
	} else {
		li.state = StateLoaded
		hook = li.hooks.OnLoad
	}
	li.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// State returns the current lifecycle state.
func (li *LazyImage) State() LoadState {
	li.mu.Lock()
	defer li.mu.Unlock()

	return li.state
}

// Image returns the immutable descriptor.
func (li *LazyImage) Image() Image {
	return li.img
}

// Observer exposes the visibility observer, mainly so callers can feed
// intersection reports in tests and teardown paths.
func (li *LazyImage) Observer() *Observer {
	return li.observer
}

// Release disconnects visibility observation. Call on teardown.
func (li *LazyImage) Release() {
	li.observer.Disconnect()
}

// View describes what should currently be rendered for this image: a
// status-role loading placeholder, an img-role error placeholder carrying
// the fallback text, or the real image element.
func (li *LazyImage) View() ImageView {
	li.mu.Lock()
	state := li.state
	li.mu.Unlock()

	switch state {
	case StateLoaded:
		return ImageView{State: state, Role: "img", Label: li.img.Alt, URL: li.img.ThumbURL}
	case StateErrored:
		return ImageView{State: state, Role: "img", Label: li.img.Alt, Placeholder: true}
	default:
		return ImageView{State: state, Role: "status", Placeholder: true}
	}
}
