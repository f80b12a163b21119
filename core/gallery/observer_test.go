// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeDetector records observations and lets tests drive intersection
// reports by hand.
type fakeDetector struct {
	reports  []func(bool)
	released int
	fail     bool
}

func (d *fakeDetector) Observe(_ ObserverConfig, report func(bool)) (func(), error) {
	if d.fail {
		return nil, errors.New("detection unavailable")
	}

	d.reports = append(d.reports, report)

	return func() { d.released++ }, nil
}

func TestObserverFailsOpenWithoutDetector(t *testing.T) {
	fired := 0

	obs := NewObserver(nil, ObserverConfig{}, func() { fired++ })

	assert.True(t, obs.Intersecting())
	assert.True(t, obs.HasIntersected())
	assert.Equal(t, 1, fired, "first-intersection callback fires before NewObserver returns")
}

func TestObserverFailsOpenOnDetectorError(t *testing.T) {
	fired := 0

	obs := NewObserver(&fakeDetector{fail: true}, ObserverConfig{}, func() { fired++ })

	assert.True(t, obs.HasIntersected())
	assert.Equal(t, 1, fired)
}

func TestObserverStickyIntersection(t *testing.T) {
	det := &fakeDetector{}
	fired := 0

	obs := NewObserver(det, ObserverConfig{RootMargin: 200, Threshold: 0.1}, func() { fired++ })

	assert.False(t, obs.Intersecting())
	assert.False(t, obs.HasIntersected())
	assert.Equal(t, 0, fired)

	report := det.reports[0]

	report(true)
	assert.True(t, obs.Intersecting())
	assert.True(t, obs.HasIntersected())
	assert.Equal(t, 1, fired)

	// Scrolling away clears Intersecting but HasIntersected is sticky.
	report(false)
	assert.False(t, obs.Intersecting())
	assert.True(t, obs.HasIntersected())

	// Re-entering does not fire the first-intersection callback again.
	report(true)
	assert.Equal(t, 1, fired)
}

func TestObserverDisconnectIdempotent(t *testing.T) {
	det := &fakeDetector{}

	obs := NewObserver(det, ObserverConfig{}, nil)

	obs.Disconnect()
	obs.Disconnect()

	assert.Equal(t, 1, det.released)
}
