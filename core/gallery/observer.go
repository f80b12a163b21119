// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import "sync"

// ObserverConfig tunes when an element counts as "near the viewport".
type ObserverConfig struct {
	// RootMargin widens the viewport by this many pixels before an element
	// is considered near.
	RootMargin int

	// Threshold is the minimum visible fraction, between 0 and 1, required
	// to count as intersecting.
	Threshold float64
}

// Detector is the runtime primitive that reports viewport intersection for
// one element. A nil Detector means the primitive is unavailable in the
// current runtime.
type Detector interface {
	// Observe starts detection and calls report on every intersection
	// change. It returns a release function that stops detection.
	Observe(cfg ObserverConfig, report func(intersecting bool)) (release func(), err error)
}

// Observer tracks, for one on-screen element, whether it currently
// intersects the viewport and whether it has ever intersected. The latter is
// sticky: once true it stays true even when the element scrolls away again.
//
// When the detection primitive is unavailable or fails to start, the
// observer fails open and reports an immediate intersection, so images still
// load instead of staying hidden forever.
type Observer struct {
	mu             sync.Mutex
	intersecting   bool
	hasIntersected bool
	release        func()
	onFirst        func()
}

// NewObserver starts observing with det and calls onFirstIntersect the
// first time the element intersects. With a nil or failing detector,
// onFirstIntersect fires before NewObserver returns.
func NewObserver(det Detector, cfg ObserverConfig, onFirstIntersect func()) *Observer {
	if onFirstIntersect == nil {
		onFirstIntersect = func() {}
	}

	obs := &Observer{onFirst: onFirstIntersect}

	if det == nil {
		obs.failOpen()

		return obs
	}

	release, err := det.Observe(cfg, obs.report)
	if err != nil {
		obs.failOpen()

		return obs
	}

	obs.release = release

	return obs
}

func (obs *Observer) failOpen() {
	obs.intersecting = true
	obs.hasIntersected = true
	obs.onFirst()
}

func (obs *Observer) report(intersecting bool) {
	obs.mu.Lock()
	obs.intersecting = intersecting
	first := intersecting && !obs.hasIntersected

	if intersecting {
		obs.hasIntersected = true
	}
	obs.mu.Unlock()

	if first {
		obs.onFirst()
	}
}

// Intersecting reports whether the element currently intersects the viewport.
func (obs *Observer) Intersecting() bool {
	obs.mu.Lock()
	defer obs.mu.Unlock()

	return obs.intersecting
}

// HasIntersected reports whether the element has ever intersected.
func (obs *Observer) HasIntersected() bool {
	obs.mu.Lock()
	defer obs.mu.Unlock()

	return obs.hasIntersected
}

// Disconnect releases the underlying detection subscription. It must be
// called when the owning element is torn down and is safe to call twice.
func (obs *Observer) Disconnect() {
	obs.mu.Lock()
	release := obs.release
	obs.release = nil
	obs.mu.Unlock()

	if release != nil {
		release()
	}
}
