package components

import "github.com/decker502/scrollkit/pkg/types"

// ScrollInputComponent 协调器对各引擎活动状态的记录
//
// 这些标志由引擎的开始/结束通知维护，协调器据此仲裁写入并判断是否稳定。
type ScrollInputComponent struct {
	// IsTouchActive 拖动进行中
	IsTouchActive bool

	// IsDisabled 禁用手势输入
	IsDisabled bool

	// IsPullToRefreshActive 下拉刷新已触发，只能由 StopPullToRefresh 解除
	IsPullToRefreshActive bool

	IsMomentumOnAxis [2]bool
	IsBouncingOnAxis [2]bool
	IsAnimatedScroll bool

	// IsUnsettled 上次稳定通知之后位置发生过变化
	IsUnsettled bool

	// IsLayoutApplied 首次刷新是否已应用布局协作方给出的初始偏移
	IsLayoutApplied bool
}

// AnyEngineActive 是否有任一引擎或拖动处于活动状态
func (c *ScrollInputComponent) AnyEngineActive() bool {
	return c.IsTouchActive ||
		c.IsAnimatedScroll ||
		c.IsMomentumOnAxis[types.AxisX] || c.IsMomentumOnAxis[types.AxisY] ||
		c.IsBouncingOnAxis[types.AxisX] || c.IsBouncingOnAxis[types.AxisY]
}
