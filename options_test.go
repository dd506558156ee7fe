package noise

import (
	"testing"

	"github.com/gogpu/noise/internal/wide"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.forceLanes {
		t.Error("forceLanes set by default")
	}
	if o.plane != nil {
		t.Error("plane set by default, want sphere")
	}
	if o.normalize != nil {
		t.Error("normalize set by default")
	}
}

func TestOptionsApply(t *testing.T) {
	plane := Plane{OriginX: 1, Step: 0.5}
	o := applyOptions([]SampleOption{
		WithWorkers(3),
		WithLaneWidth(4),
		WithPlane(plane),
		WithNormalization(true),
	})

	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if !o.forceLanes || o.laneWidth != wide.Width4 {
		t.Errorf("lane width = %d (forced %v), want 4", o.laneWidth, o.forceLanes)
	}
	if o.plane == nil || *o.plane != plane {
		t.Errorf("plane = %v, want %v", o.plane, plane)
	}
	if o.normalize == nil || !*o.normalize {
		t.Error("normalize not enabled")
	}
}

func TestWithSphereOverridesPlane(t *testing.T) {
	o := applyOptions([]SampleOption{WithPlane(Plane{Step: 1}), WithSphere()})
	if o.plane != nil {
		t.Error("WithSphere() did not clear the plane")
	}
}

func TestWorkerCountCappedByHeight(t *testing.T) {
	c, err := newCall(8, 3, DefaultParams(), FBM, Perlin, applyOptions([]SampleOption{WithWorkers(16)}))
	if err != nil {
		t.Fatalf("newCall() error = %v", err)
	}
	if len(c.ranges) != 3 {
		t.Errorf("ranges = %d, want 3", len(c.ranges))
	}
}
