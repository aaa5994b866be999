package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/scrollkit/pkg/types"
)

func TestBoundary_Clamp(t *testing.T) {
	b := Boundary{Start: 0, End: 800}

	assert.Equal(t, 800.0, b.Range())
	assert.Equal(t, 0.0, b.Clamp(-20))
	assert.Equal(t, 800.0, b.Clamp(820))
	assert.Equal(t, 400.0, b.Clamp(400))

	empty := Boundary{}
	assert.Equal(t, 0.0, empty.Range())
	assert.Equal(t, 0.0, empty.Clamp(35))
}

func TestScrollPositionComponent_Vectors(t *testing.T) {
	c := &ScrollPositionComponent{}
	c.Axes[types.AxisX] = AxisPosition{Position: 10, Progress: 0.1}
	c.Axes[types.AxisY] = AxisPosition{Position: 20, Progress: 0.2}

	assert.Equal(t, types.V2(10, 20), c.Position())
	assert.Equal(t, types.V2(0.1, 0.2), c.Progress())
}

func TestScrollInputComponent_AnyEngineActive(t *testing.T) {
	c := &ScrollInputComponent{}
	assert.False(t, c.AnyEngineActive())

	c.IsDisabled = true
	c.IsUnsettled = true
	assert.False(t, c.AnyEngineActive(), "禁用和未稳定标志不算活动")

	c.IsBouncingOnAxis[types.AxisX] = true
	assert.True(t, c.AnyEngineActive())
}

func TestEngineComponents_AnyActive(t *testing.T) {
	m := &MomentumComponent{}
	assert.False(t, m.AnyActive())
	m.Axes[types.AxisY].IsActive = true
	assert.True(t, m.AnyActive())

	b := &BounceComponent{}
	assert.False(t, b.AnyActive())
	b.Axes[types.AxisX] = AxisBounce{IsActive: true, CurrentPosition: -5}
	assert.True(t, b.AnyActive())
	assert.Equal(t, types.V2(-5, 0), b.CurrentPosition())
}
