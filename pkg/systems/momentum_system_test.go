package systems

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/scrollkit/pkg/types"
)

func newTestMomentum(t *testing.T, axis string) (*MomentumSystem, *engineFixture) {
	t.Helper()
	f := newEngineFixture(t, axis)
	ms := NewMomentumSystem(f.em, f.entity, f.clock, f.cfg, f.rec, logr.Discard())
	return ms, f
}

// TestMomentumSystem_ClampsToMaxSpeed 初速度超过最大速度时被截断
func TestMomentumSystem_ClampsToMaxSpeed(t *testing.T) {
	ms, f := newTestMomentum(t, "y")

	ms.Start(Velocity{types.AxisY: {Direction: types.DirectionForward, PxPerFrame: 40}})

	assert.True(t, ms.IsActiveOnAxis(types.AxisY))
	assert.Equal(t, 35.0, ms.Speed(types.AxisY))

	f.clock.Step()
	require.Len(t, f.rec.pushes, 1)
	assert.Equal(t, 35.0, f.rec.pushes[0][types.AxisY].Px)
	assert.Equal(t, types.DirectionForward, f.rec.pushes[0][types.AxisY].Direction)
}

// TestMomentumSystem_SpeedDecreasesEachFrame 每帧推动量按固定衰减量递减
func TestMomentumSystem_SpeedDecreasesEachFrame(t *testing.T) {
	ms, f := newTestMomentum(t, "y")
	ms.Start(Velocity{types.AxisY: {Direction: types.DirectionBackward, PxPerFrame: 10}})

	for i := 0; i < 5; i++ {
		f.clock.Step()
	}

	var want []Push
	for i := 0; i < 5; i++ {
		want = append(want, Push{types.AxisY: {Direction: types.DirectionBackward, Px: 10 - 0.2*float64(i)}})
	}
	if diff := cmp.Diff(want, f.rec.pushes, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("pushes mismatch (-want +got):\n%s", diff)
	}
}

// TestMomentumSystem_StopsBelowMinSpeed 速度低于下限时停止，并发出完整的事件序列
func TestMomentumSystem_StopsBelowMinSpeed(t *testing.T) {
	ms, f := newTestMomentum(t, "y")
	ms.Start(Velocity{types.AxisY: {Direction: types.DirectionForward, PxPerFrame: 1}})

	frames := f.clock.RunUntilIdle(100)

	// 1.0、0.8、0.6 各推动一次，第 4 帧速度 0.4 低于 0.5 停止
	assert.Equal(t, 4, frames)
	want := []string{
		"momentum:start",
		"momentum:start:y",
		"momentum:push x3",
		"momentum:stop:y",
		"momentum:stop",
	}
	if diff := cmp.Diff(want, f.rec.compact()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, ms.IsActive())
}

// TestMomentumSystem_IgnoresZeroVelocity 速度为 0 或没有方向的轴不启动
func TestMomentumSystem_IgnoresZeroVelocity(t *testing.T) {
	ms, f := newTestMomentum(t, "xy")

	ms.Start(Velocity{
		types.AxisX: {Direction: types.DirectionForward, PxPerFrame: 0},
		types.AxisY: {Direction: types.DirectionNone, PxPerFrame: 10},
	})

	assert.False(t, ms.IsActive())
	assert.Empty(t, f.rec.events)
	assert.True(t, f.clock.Idle())
}

// TestMomentumSystem_DisabledAxisIgnored 未启用的轴不会启动惯性
func TestMomentumSystem_DisabledAxisIgnored(t *testing.T) {
	ms, f := newTestMomentum(t, "y")

	ms.StartOnAxis(types.AxisX, AxisVelocity{Direction: types.DirectionForward, PxPerFrame: 10})

	assert.False(t, ms.IsActiveOnAxis(types.AxisX))
	assert.Empty(t, f.rec.events)
}

// TestMomentumSystem_PerAxisEvents 两个轴独立启动和停止，全局事件只发一次
func TestMomentumSystem_PerAxisEvents(t *testing.T) {
	ms, f := newTestMomentum(t, "xy")

	ms.StartOnAxis(types.AxisX, AxisVelocity{Direction: types.DirectionForward, PxPerFrame: 5})
	ms.StartOnAxis(types.AxisY, AxisVelocity{Direction: types.DirectionForward, PxPerFrame: 5})
	ms.StopOnAxis(types.AxisX)
	ms.StopOnAxis(types.AxisX)
	ms.Stop()

	want := []string{
		"momentum:start",
		"momentum:start:x",
		"momentum:start:y",
		"momentum:stop:x",
		"momentum:stop:y",
		"momentum:stop",
	}
	if diff := cmp.Diff(want, f.rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, f.clock.Idle(), "停止后不应留下已申请的帧")
}

// TestMomentumSystem_RestartReplacesSpeed 运行中重新启动会替换速度且不重复发出开始事件
func TestMomentumSystem_RestartReplacesSpeed(t *testing.T) {
	ms, f := newTestMomentum(t, "y")

	ms.Start(Velocity{types.AxisY: {Direction: types.DirectionForward, PxPerFrame: 5}})
	f.clock.Step()
	ms.Start(Velocity{types.AxisY: {Direction: types.DirectionBackward, PxPerFrame: 20}})

	assert.Equal(t, 20.0, ms.Speed(types.AxisY))
	assert.Equal(t, 1, f.clock.Pending())
	assert.Equal(t, []string{"momentum:start", "momentum:start:y", "momentum:push"}, f.rec.events)
}
