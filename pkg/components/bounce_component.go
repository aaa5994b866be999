package components

import (
	"time"

	"github.com/decker502/scrollkit/pkg/types"
	"github.com/decker502/scrollkit/pkg/utils"
)

// AxisBounce 单轴回弹状态
// 每个轴独立计时，两个轴可以按不同的时间表回弹
type AxisBounce struct {
	IsActive bool

	StartPosition   float64
	CurrentPosition float64
	TargetPosition  float64

	StartTime time.Time
	Duration  time.Duration

	// Ease 本次回弹使用的缓动函数
	Ease utils.EaseFunc
}

// BounceComponent 回弹引擎状态，只由 BounceSystem 修改
type BounceComponent struct {
	Axes [2]AxisBounce
}

// AnyActive 是否有任一轴处于回弹中
func (c *BounceComponent) AnyActive() bool {
	return c.Axes[types.AxisX].IsActive || c.Axes[types.AxisY].IsActive
}

// CurrentPosition 两个轴的当前回弹位置
func (c *BounceComponent) CurrentPosition() types.Vec2 {
	return types.V2(c.Axes[types.AxisX].CurrentPosition, c.Axes[types.AxisY].CurrentPosition)
}
