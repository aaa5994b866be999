package components

import "github.com/decker502/scrollkit/pkg/types"

// Boundary 单轴的有效停留范围，始终满足 Start <= End
type Boundary struct {
	Start float64
	End   float64
}

// Range 可滚动距离
func (b Boundary) Range() float64 {
	return b.End - b.Start
}

// Clamp 把位置限制在边界内
func (b Boundary) Clamp(px float64) float64 {
	if px < b.Start {
		return b.Start
	}
	if px > b.End {
		return b.End
	}
	return px
}

// AxisPosition 单轴位置状态
//
// Overscroll 和 OverscrollDirection 是派生量，每次位置更新时重新计算，
// 不会独立于 Position 被修改。
type AxisPosition struct {
	// Position 权威像素坐标（弹性越界时可以超出边界）
	Position float64

	// Progress 滚动进度 [0, 1]，边界范围为 0 时为 0
	Progress float64

	// Overscroll 越过最近边界的像素距离（非负）
	Overscroll float64

	// OverscrollDirection 越过的是哪一侧：1 为终点之后，-1 为起点之前，0 为未越界
	OverscrollDirection types.Direction

	// OverscrollPull 下拉刷新拉动程度 [0, 1]
	OverscrollPull float64
}

// ScrollPositionComponent 协调器持有的权威位置和边界
type ScrollPositionComponent struct {
	Axes       [2]AxisPosition
	Boundaries [2]Boundary

	// Container 容器尺寸，Content 内容尺寸（来自布局协作方）
	Container types.Vec2
	Content   types.Vec2
}

// Position 返回两个轴的位置
func (c *ScrollPositionComponent) Position() types.Vec2 {
	return types.V2(c.Axes[types.AxisX].Position, c.Axes[types.AxisY].Position)
}

// Progress 返回两个轴的进度
func (c *ScrollPositionComponent) Progress() types.Vec2 {
	return types.V2(c.Axes[types.AxisX].Progress, c.Axes[types.AxisY].Progress)
}
