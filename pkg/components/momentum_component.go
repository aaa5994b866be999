package components

import "github.com/decker502/scrollkit/pkg/types"

// AxisMomentum 单轴惯性状态
type AxisMomentum struct {
	// IsActive 该轴惯性是否进行中
	IsActive bool

	// Direction 推动方向
	Direction types.Direction

	// PxPerFrame 当前速度（像素/帧），每帧减去固定衰减量
	PxPerFrame float64
}

// MomentumComponent 惯性引擎状态，只由 MomentumSystem 修改
type MomentumComponent struct {
	Axes [2]AxisMomentum
}

// AnyActive 是否有任一轴处于惯性中
func (c *MomentumComponent) AnyActive() bool {
	return c.Axes[types.AxisX].IsActive || c.Axes[types.AxisY].IsActive
}
