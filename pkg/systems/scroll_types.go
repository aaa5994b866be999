package systems

import "github.com/decker502/scrollkit/pkg/types"

// PushBy 单轴推动：方向和像素量
// 正方向使位置增大
type PushBy struct {
	Direction types.Direction
	Px        float64
}

// Push 两个轴的推动，来自拖动或惯性
type Push [2]PushBy

// AxisVelocity 单轴初速度
type AxisVelocity struct {
	Direction  types.Direction
	PxPerFrame float64
}

// Velocity 拖动结束时手势协作方估算的速度
type Velocity [2]AxisVelocity

// PushFromDrag 把指针位移转换成推动：指针向下移动时内容跟随向下，滚动位置减小
func PushFromDrag(delta types.Vec2) Push {
	var p Push
	for _, a := range types.Axes {
		scroll := -delta[a]
		p[a] = PushBy{Direction: types.DirectionOf(scroll), Px: abs(scroll)}
	}
	return p
}

// VelocityFromDrag 把松手时的指针速度（像素/帧）转换成惯性初速度
func VelocityFromDrag(v types.Vec2) Velocity {
	var vel Velocity
	for _, a := range types.Axes {
		scroll := -v[a]
		vel[a] = AxisVelocity{Direction: types.DirectionOf(scroll), PxPerFrame: abs(scroll)}
	}
	return vel
}

// PushOrigin 推动来源，决定越界上限和是否检查惯性停止条件
type PushOrigin int

const (
	// OriginTouch 拖动产生的推动
	OriginTouch PushOrigin = iota
	// OriginMomentum 惯性产生的推动
	OriginMomentum
)

// String 返回推动来源名称
func (o PushOrigin) String() string {
	if o == OriginMomentum {
		return "momentum"
	}
	return "touch"
}

// MomentumListener 接收惯性引擎的通知
type MomentumListener interface {
	OnMomentumStart()
	OnMomentumStartOnAxis(axis types.Axis)
	OnMomentumPush(push Push)
	OnMomentumStopOnAxis(axis types.Axis)
	OnMomentumStop()
}

// BounceListener 接收回弹引擎的通知
type BounceListener interface {
	OnBounceStart()
	OnBounceStartOnAxis(axis types.Axis)
	// OnBouncePositionChange 每帧一次，携带两个轴的回弹位置
	OnBouncePositionChange(position types.Vec2)
	OnBounceEndOnAxis(axis types.Axis)
	OnBounceEnd()
}

// AnimatedScrollListener 接收动画滚动引擎的通知
type AnimatedScrollListener interface {
	OnAnimatedScrollStart()
	OnAnimatedScrollPositionChange(position types.Vec2)
	OnAnimatedScrollStop()
}

// ScrollEvent 位置通知的数据
type ScrollEvent struct {
	Position       types.Vec2
	Progress       types.Vec2
	Overscroll     types.Vec2
	OverscrollPull types.Vec2

	OverscrollDirection [2]types.Direction

	IsTouchActive bool
}

// ScrollListener 渲染协作方
type ScrollListener interface {
	// OnPositionChange 每次接受的位置变化
	OnPositionChange(e ScrollEvent)
	// OnPositionStable 所有引擎都停止后触发，每次稳定只触发一次
	OnPositionStable(e ScrollEvent)
}

// PullToRefreshListener 可选接口：ScrollListener 同时实现它时会收到下拉刷新通知
type PullToRefreshListener interface {
	OnPullToRefresh(e ScrollEvent)
}

// Layout 布局协作方，提供容器和内容尺寸
type Layout interface {
	ContainerSize() types.Vec2
	ContentSize() types.Vec2
}

// ContentOffsetLayout 可选接口：首次刷新时把内容的初始偏移作为起始位置
type ContentOffsetLayout interface {
	ContentOffset() types.Vec2
}

// StaticLayout 固定尺寸的布局，适用于测试和无 DOM 的场景
type StaticLayout struct {
	Container types.Vec2
	Content   types.Vec2
	Offset    types.Vec2
}

// ContainerSize 返回容器尺寸
func (l *StaticLayout) ContainerSize() types.Vec2 { return l.Container }

// ContentSize 返回内容尺寸
func (l *StaticLayout) ContentSize() types.Vec2 { return l.Content }

// ContentOffset 返回初始偏移
func (l *StaticLayout) ContentOffset() types.Vec2 { return l.Offset }
