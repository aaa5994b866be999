package systems

import (
	"math"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/scrollkit/pkg/types"
)

func newTestAnimatedScroll(t *testing.T, axis string) (*AnimatedScrollSystem, *engineFixture) {
	t.Helper()
	f := newEngineFixture(t, axis)
	as := NewAnimatedScrollSystem(f.em, f.entity, f.clock, f.cfg, f.rec, logr.Discard())
	return as, f
}

// TestAnimatedScrollSystem_DirectionIsUnitVector 方向向量是单位向量
func TestAnimatedScrollSystem_DirectionIsUnitVector(t *testing.T) {
	tests := []struct {
		name   string
		target types.Vec2
		want   types.Vec2
	}{
		{"right", types.V2(300, 0), types.V2(1, 0)},
		{"down", types.V2(0, 400), types.V2(0, 1)},
		{"diagonal", types.V2(300, 400), types.V2(0.6, 0.8)},
		{"up-left", types.V2(-300, -400), types.V2(-0.6, -0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as, _ := newTestAnimatedScroll(t, "xy")
			as.Start(types.V2(0, 0), tt.target, 0)

			d := as.Direction()
			assert.InDelta(t, 1.0, d.X()*d.X()+d.Y()*d.Y(), 1e-9)
			assert.InDelta(t, tt.want.X(), d.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), d.Y(), 1e-9)
		})
	}
}

// TestAnimatedScrollSystem_ArrivesAtTarget 匀速前进后减速，最终精确停在目标
func TestAnimatedScrollSystem_ArrivesAtTarget(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "xy")
	target := types.V2(300, 400)

	as.Start(types.V2(0, 0), target, 0)
	assert.Equal(t, 50.0, as.Speed())

	f.clock.RunUntilIdle(1000)

	require.NotEmpty(t, f.rec.positions)
	assert.Equal(t, target, f.rec.positions[len(f.rec.positions)-1])
	assert.False(t, as.IsActive())

	// 单调靠近目标，且从未越过
	prev := math.Inf(1)
	for i, p := range f.rec.positions {
		d := p.Distance(target)
		assert.LessOrEqual(t, d, prev, "frame %d", i)
		assert.LessOrEqual(t, p.X(), target.X(), "frame %d", i)
		assert.LessOrEqual(t, p.Y(), target.Y(), "frame %d", i)
		prev = d
	}

	assert.Equal(t, "animated:start", f.rec.events[0])
	assert.Equal(t, "animated:stop", f.rec.events[len(f.rec.events)-1])
	assert.Equal(t, 1, count(f.rec.events, "animated:stop"))
}

// TestAnimatedScrollSystem_FirstFramesAtMaxSpeed 距离大于减速距离时按最大速度前进
func TestAnimatedScrollSystem_FirstFramesAtMaxSpeed(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Start(types.V2(0, 0), types.V2(0, 1000), 20)
	f.clock.Step()
	f.clock.Step()

	require.Len(t, f.rec.positions, 2)
	assert.InDelta(t, 20.0, f.rec.positions[0].Y(), 1e-9)
	assert.InDelta(t, 40.0, f.rec.positions[1].Y(), 1e-9)
	// 未启用的 x 轴保持不动
	assert.Equal(t, 0.0, f.rec.positions[1].X())
}

// TestAnimatedScrollSystem_SlowsDownNearTarget 进入减速距离后速度按比例递减
func TestAnimatedScrollSystem_SlowsDownNearTarget(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Start(types.V2(0, 0), types.V2(0, 75), 0)
	f.clock.Step()

	// 距离 75，减速距离 150：速度 50 * 75/150 = 25
	assert.InDelta(t, 25.0, as.Speed(), 1e-9)
	require.Len(t, f.rec.positions, 1)
	assert.InDelta(t, 25.0, f.rec.positions[0].Y(), 1e-9)
}

// TestAnimatedScrollSystem_InstantWhenAlreadyThere 距离小于 1 像素时同步结束
func TestAnimatedScrollSystem_InstantWhenAlreadyThere(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Start(types.V2(0, 100), types.V2(0, 100.5), 0)

	want := []string{"animated:start", "animated:position", "animated:stop"}
	if diff := cmp.Diff(want, f.rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.V2(0, 100.5), f.rec.positions[0])
	assert.True(t, f.clock.Idle())
}

// TestAnimatedScrollSystem_StopWhenIdleIsNoop 未激活时 Stop 不发出事件
func TestAnimatedScrollSystem_StopWhenIdleIsNoop(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Stop()

	assert.Empty(t, f.rec.events)
}

// TestAnimatedScrollSystem_StopMidway 中途停止：速度清零，不再推进
func TestAnimatedScrollSystem_StopMidway(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Start(types.V2(0, 0), types.V2(0, 1000), 0)
	f.clock.Step()
	as.Stop()
	f.clock.RunUntilIdle(10)

	assert.Equal(t, 0.0, as.Speed())
	assert.Len(t, f.rec.positions, 1)
	assert.Equal(t, []string{"animated:start", "animated:position", "animated:stop"}, f.rec.events)
}

// TestAnimatedScrollSystem_RetargetKeepsSingleStart 运行中改变目标不会重复发出开始事件
func TestAnimatedScrollSystem_RetargetKeepsSingleStart(t *testing.T) {
	as, f := newTestAnimatedScroll(t, "y")

	as.Start(types.V2(0, 0), types.V2(0, 1000), 0)
	f.clock.Step()
	as.Start(f.rec.positions[0], types.V2(0, 0), 0)
	f.clock.RunUntilIdle(1000)

	assert.Equal(t, 1, count(f.rec.events, "animated:start"))
	assert.Equal(t, types.V2(0, 0), f.rec.positions[len(f.rec.positions)-1])
	assert.Equal(t, -1.0, math.Round(as.Direction().Y()))
}
