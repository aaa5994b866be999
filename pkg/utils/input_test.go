package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/scrollkit/pkg/types"
)

func press(x, y int) PointerSample { return PointerSample{Pressed: true, X: x, Y: y, TouchID: -1} }

func release(x, y int) PointerSample { return PointerSample{X: x, Y: y, TouchID: -1} }

func TestDragTracker_InitialState(t *testing.T) {
	dt := NewDragTracker()

	assert.Equal(t, DragStateNone, dt.State())
	assert.False(t, dt.IsDragging())
	assert.False(t, dt.JustStarted())
	assert.False(t, dt.JustEnded())
	assert.Equal(t, types.Vec2{}, dt.ReleaseVelocity())
}

func TestDragTracker_StateTransitions(t *testing.T) {
	dt := NewDragTracker()

	dt.Update(release(0, 0))
	assert.Equal(t, DragStateNone, dt.State())

	dt.Update(press(10, 10))
	assert.True(t, dt.JustStarted())
	assert.Equal(t, types.Vec2{}, dt.Delta())

	dt.Update(press(10, 30))
	assert.True(t, dt.IsDragging())
	assert.Equal(t, types.V2(0, 20), dt.Delta())

	dt.Update(release(10, 30))
	assert.True(t, dt.JustEnded())
	assert.Equal(t, types.Vec2{}, dt.Delta())

	// 结束状态只持续一帧
	dt.Update(release(10, 30))
	assert.Equal(t, DragStateNone, dt.State())
}

func TestDragTracker_DistanceAndVelocity(t *testing.T) {
	dt := NewDragTracker()

	dt.Update(press(100, 200))
	for _, y := range []int{190, 180, 160, 140, 120, 100} {
		dt.Update(press(100, y))
	}

	assert.Equal(t, types.V2(0, -100), dt.Distance())

	dt.Update(release(100, 100))
	// 最近 4 帧：-20, -20, -20, -20
	assert.Equal(t, types.V2(0, -20), dt.ReleaseVelocity())
}

func TestDragTracker_HoldStillBeforeRelease(t *testing.T) {
	dt := NewDragTracker()

	dt.Update(press(0, 0))
	dt.Update(press(0, 40))
	for i := 0; i < velocitySamples; i++ {
		dt.Update(press(0, 40))
	}
	dt.Update(release(0, 40))

	assert.Equal(t, types.Vec2{}, dt.ReleaseVelocity())
}

func TestDragTracker_ResetBetweenDrags(t *testing.T) {
	dt := NewDragTracker()

	dt.Update(press(0, 0))
	dt.Update(press(0, 50))
	dt.Update(release(0, 50))
	dt.Update(press(5, 5))

	assert.True(t, dt.JustStarted())
	assert.Equal(t, types.Vec2{}, dt.Distance())
	assert.Equal(t, types.Vec2{}, dt.ReleaseVelocity())
}

func TestDragState_String(t *testing.T) {
	assert.Equal(t, "none", DragStateNone.String())
	assert.Equal(t, "started", DragStateStarted.String())
	assert.Equal(t, "dragging", DragStateDragging.String())
	assert.Equal(t, "ended", DragStateEnded.String())
}

func TestPointerSample_IsTouch(t *testing.T) {
	assert.False(t, press(0, 0).IsTouch())
	assert.True(t, PointerSample{TouchID: 3}.IsTouch())
}
