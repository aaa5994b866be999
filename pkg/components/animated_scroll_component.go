package components

import "github.com/decker502/scrollkit/pkg/types"

// AnimatedScrollComponent 定向动画滚动状态
//
// 与回弹/惯性不同，这里只有一份跨轴共享的状态：
// 两个轴沿同一个方向向量同步移动。
type AnimatedScrollComponent struct {
	IsActive bool

	StartPosition   types.Vec2
	CurrentPosition types.Vec2
	TargetPosition  types.Vec2

	// Radians 起点到终点的方向角 atan2(Δy, Δx)
	Radians float64

	// Direction 方向向量在各轴上的权重 (cos, sin)
	Direction types.Vec2

	// PxPerFrame 当前速度，接近目标时按距离比例递减
	PxPerFrame float64

	// MaxPxPerFrame 本次动画的最大速度
	MaxPxPerFrame float64

	// TotalDistance 起点到终点的总距离
	TotalDistance float64
}
