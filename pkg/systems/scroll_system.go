package systems

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-logr/logr"

	"github.com/decker502/scrollkit/pkg/components"
	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/ecs"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/logging"
	"github.com/decker502/scrollkit/pkg/types"
	"github.com/decker502/scrollkit/pkg/utils"
)

// ErrMissingCollaborator 构造协调器时缺少调度器或布局
var ErrMissingCollaborator = errors.New("missing collaborator")

// ScrollSystemOptions 协调器的可选依赖
type ScrollSystemOptions struct {
	// Scheduler 帧调度器（必需）
	Scheduler frame.Scheduler

	// TimeProvider 回弹使用的时间源，nil 时使用系统时钟
	TimeProvider frame.TimeProvider

	// EntityManager 状态存储，nil 时创建一个新的
	EntityManager *ecs.EntityManager

	// Logger 日志器，零值时丢弃日志
	Logger logr.Logger
}

// ScrollSystem 滚动位置协调器
//
// 权威位置的唯一写入者。负责：
//   - 根据布局尺寸计算边界
//   - 对拖动和惯性的推动施加越界阻尼
//   - 在惯性、回弹、动画滚动之间仲裁写入
//   - 发出 positionChange / positionStable 通知
//
// 所有方法都必须在驱动帧循环的同一个 goroutine 中调用。
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	scheduler     frame.Scheduler
	config        *config.ScrollConfig
	axes          types.AxisSet
	layout        Layout
	logger        logr.Logger

	momentum *MomentumSystem
	bounce   *BounceSystem
	animated *AnimatedScrollSystem

	listeners []ScrollListener

	// halting 为 true 时正在主动停止引擎，忽略由此产生的回弹/稳定检查
	halting     bool
	destroyed   bool
	resizeFrame frame.Handle
}

// NewScrollSystem 创建协调器
//
// cfg 会被复制，之后对原配置的修改不会影响协调器。
// 构造时同步执行一次 Refresh 以计算边界。
func NewScrollSystem(cfg *config.ScrollConfig, layout Layout, opts ScrollSystemOptions) (*ScrollSystem, error) {
	if cfg == nil {
		cfg = config.DefaultScrollConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scroll config: %w", err)
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrMissingCollaborator)
	}
	if layout == nil {
		return nil, fmt.Errorf("%w: layout is required", ErrMissingCollaborator)
	}

	timeProvider := opts.TimeProvider
	if timeProvider == nil {
		timeProvider = frame.NewRealTimeProvider()
	}
	em := opts.EntityManager
	if em == nil {
		em = ecs.NewEntityManager()
	}
	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	cfg = cfg.Clone()
	s := &ScrollSystem{
		entityManager: em,
		scheduler:     opts.Scheduler,
		config:        cfg,
		axes:          cfg.AxisSet(),
		layout:        layout,
		logger:        logger.WithName("scroll"),
	}

	s.entity = em.CreateEntity()
	ecs.AddComponent(em, s.entity, &components.ScrollPositionComponent{})
	ecs.AddComponent(em, s.entity, &components.ScrollInputComponent{})

	s.momentum = NewMomentumSystem(em, s.entity, s.scheduler, cfg, momentumEvents{s}, logger)
	s.bounce = NewBounceSystem(em, s.entity, s.scheduler, timeProvider, cfg, bounceEvents{s}, logger)
	s.animated = NewAnimatedScrollSystem(em, s.entity, s.scheduler, cfg, animatedScrollEvents{s}, logger)

	s.Refresh()

	s.logger.V(logging.VERBOSE).Info("[ScrollSystem] created", "axis", s.axes.String(), "overscroll", cfg.Overscroll)
	return s, nil
}

// ========== 监听器 ==========

// AddListener 注册渲染协作方；需要注销的监听器应使用指针
func (s *ScrollSystem) AddListener(l ScrollListener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener 注销渲染协作方
//
// 按接口值比较查找，只有指针或其他可比较类型的监听器能被注销；
// 不可比较的监听器记录错误后忽略。
func (s *ScrollSystem) RemoveListener(l ScrollListener) {
	if l == nil {
		return
	}
	if t := reflect.TypeOf(l); !t.Comparable() {
		s.logger.Error(nil, "[ScrollSystem] listener type is not comparable, register a pointer instead", "type", t.String())
		return
	}
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ========== 公开操作 ==========

// ScrollTo 滚动到目标位置
//
// 总是先停止惯性和回弹（以及进行中的动画滚动），再把目标限制在边界内。
// animate 为 true 时交给动画滚动引擎，speed <= 0 使用配置的最大速度；
// 否则立即同步设置位置。
func (s *ScrollSystem) ScrollTo(x, y float64, animate bool, speed float64) {
	if s.misuse("ScrollTo") {
		return
	}

	s.haltEngines()

	pos := s.positionComponent()
	target := s.clampToBoundaries(types.V2(x, y))

	if animate {
		s.animated.Start(pos.Position(), target, speed)
		return
	}

	s.updatePosition(target)
	s.checkForPositionStable()
}

// ScrollBy 相对当前位置滚动
func (s *ScrollSystem) ScrollBy(dx, dy float64, animate bool, speed float64) {
	if s.misuse("ScrollBy") {
		return
	}
	p := s.positionComponent().Position()
	s.ScrollTo(p.X()+dx, p.Y()+dy, animate, speed)
}

// ScrollToPercentage 按进度滚动，px、py 取值 [0, 1]，超出范围会被限制
func (s *ScrollSystem) ScrollToPercentage(px, py float64) {
	if s.misuse("ScrollToPercentage") {
		return
	}
	pos := s.positionComponent()
	percent := types.V2(px, py)
	target := pos.Position()
	s.axes.Each(func(a types.Axis) {
		b := pos.Boundaries[a]
		target[a] = b.Start + utils.Clamp(percent[a], 0, 1)*b.Range()
	})
	s.ScrollTo(target.X(), target.Y(), false, 0)
}

// ScrollToTop 滚动到 y 轴起点
func (s *ScrollSystem) ScrollToTop(animate bool) {
	if s.misuse("ScrollToTop") {
		return
	}
	pos := s.positionComponent()
	s.ScrollTo(pos.Axes[types.AxisX].Position, pos.Boundaries[types.AxisY].Start, animate, 0)
}

// ScrollToBottom 滚动到 y 轴终点
func (s *ScrollSystem) ScrollToBottom(animate bool) {
	if s.misuse("ScrollToBottom") {
		return
	}
	pos := s.positionComponent()
	s.ScrollTo(pos.Axes[types.AxisX].Position, pos.Boundaries[types.AxisY].End, animate, 0)
}

// GetPosition 返回当前位置快照
func (s *ScrollSystem) GetPosition() ScrollEvent {
	return s.snapshot()
}

// Boundaries 返回两个轴的边界
func (s *ScrollSystem) Boundaries() [2]components.Boundary {
	return s.positionComponent().Boundaries
}

// Refresh 从布局协作方同步重新计算边界
//
// 对每个启用的轴：start = 0，end = 内容尺寸 - 容器尺寸，end < 0 时取 0。
// 首次刷新时如果布局提供初始偏移，则以它作为起始位置。
// 刷新后若处于越界且空闲，开始回弹。
func (s *ScrollSystem) Refresh() {
	if s.misuse("Refresh") {
		return
	}

	pos := s.positionComponent()
	input := s.inputComponent()

	pos.Container = s.layout.ContainerSize()
	pos.Content = s.layout.ContentSize()

	s.axes.Each(func(a types.Axis) {
		end := pos.Content[a] - pos.Container[a]
		// 内容比容器小时，唯一的稳定位置是 0
		if end < 0 {
			end = 0
		}
		pos.Boundaries[a] = components.Boundary{Start: 0, End: end}
	})

	target := pos.Position()
	if !input.IsLayoutApplied {
		input.IsLayoutApplied = true
		if ol, ok := s.layout.(ContentOffsetLayout); ok {
			offset := ol.ContentOffset()
			s.axes.Each(func(a types.Axis) { target[a] = offset[a] })
		}
	}

	s.logger.V(logging.DEBUG).Info("[ScrollSystem] refreshed",
		"container", pos.Container, "content", pos.Content,
		"boundaryX", pos.Boundaries[types.AxisX], "boundaryY", pos.Boundaries[types.AxisY])

	s.recomputeDerived()
	s.updatePosition(target)
	s.checkForBounceStart()
	s.checkForPositionStable()
}

// HandleResize 尺寸变化通知；启用 refreshOnResize 时在下一帧合并执行一次 Refresh
func (s *ScrollSystem) HandleResize() {
	if s.misuse("HandleResize") || !s.config.RefreshOnResize || s.resizeFrame != 0 {
		return
	}
	s.resizeFrame = s.scheduler.Request(frame.TickerFunc(func() {
		s.resizeFrame = 0
		if !s.destroyed {
			s.Refresh()
		}
	}))
}

// DisableScrolling 禁用或恢复手势输入
//
// 禁用时停止所有引擎并结束进行中的拖动；越界的轴随后回弹到边界。
// 程序化滚动（ScrollTo 等）不受影响。
func (s *ScrollSystem) DisableScrolling(disabled bool) {
	if s.misuse("DisableScrolling") {
		return
	}
	input := s.inputComponent()
	input.IsDisabled = disabled
	if !disabled {
		return
	}

	input.IsTouchActive = false
	s.haltEngines()
	s.checkForBounceStart()
	s.checkForPositionStable()
}

// StopPullToRefresh 结束下拉刷新状态，越界的轴回弹到边界
func (s *ScrollSystem) StopPullToRefresh() {
	if s.misuse("StopPullToRefresh") {
		return
	}
	s.inputComponent().IsPullToRefreshActive = false
	s.checkForBounceStart()
	s.checkForPositionStable()
}

// Destroy 停止所有引擎并释放状态，之后调用任何修改方法都是误用
func (s *ScrollSystem) Destroy() {
	if s.destroyed {
		return
	}
	s.haltEngines()
	s.scheduler.Cancel(s.resizeFrame)
	s.resizeFrame = 0
	s.listeners = nil
	s.destroyed = true

	s.entityManager.DestroyEntity(s.entity)
	s.entityManager.RemoveMarkedEntities()
	s.logger.V(logging.VERBOSE).Info("[ScrollSystem] destroyed")
}

// ========== 手势输入 ==========

// TouchStart 拖动开始：停止所有引擎
func (s *ScrollSystem) TouchStart() {
	if s.misuse("TouchStart") {
		return
	}
	input := s.inputComponent()
	if input.IsDisabled {
		return
	}
	input.IsTouchActive = true
	s.haltEngines()
}

// Push 拖动过程中的推动；尚未开始拖动时隐式开始
func (s *ScrollSystem) Push(push Push) {
	if s.misuse("Push") {
		return
	}
	input := s.inputComponent()
	if input.IsDisabled {
		return
	}
	if !input.IsTouchActive {
		s.TouchStart()
	}
	// 拖动中发起的动画滚动被后续推动接管
	if input.IsAnimatedScroll {
		s.haltAnimatedScroll()
	}
	s.applyPush(push, OriginTouch)
}

// TouchEnd 拖动结束
//
// velocity 非 nil 时，在没有越界的轴上启动惯性；拖动中发起的动画滚动仍在进行时不启动惯性。
// 随后越界的轴开始回弹，并检查是否已经稳定。
func (s *ScrollSystem) TouchEnd(velocity *Velocity) {
	if s.misuse("TouchEnd") {
		return
	}
	input := s.inputComponent()
	if !input.IsTouchActive {
		return
	}
	input.IsTouchActive = false

	if velocity != nil && !input.IsDisabled && !input.IsAnimatedScroll {
		pos := s.positionComponent()
		s.axes.Each(func(a types.Axis) {
			if pos.Axes[a].OverscrollDirection != types.DirectionNone {
				return
			}
			// 同一轴上惯性与回弹互斥：先停止回弹
			s.bounce.StopOnAxis(a)
			s.momentum.StartOnAxis(a, velocity[a])
		})
	}

	if input.IsPullToRefreshActive {
		s.emitPullToRefresh()
	}

	s.checkForBounceStart()
	s.checkForPositionStable()
}

// ========== 状态查询 ==========

// Momentum 返回惯性引擎
func (s *ScrollSystem) Momentum() *MomentumSystem { return s.momentum }

// Bounce 返回回弹引擎
func (s *ScrollSystem) Bounce() *BounceSystem { return s.bounce }

// AnimatedScroll 返回动画滚动引擎
func (s *ScrollSystem) AnimatedScroll() *AnimatedScrollSystem { return s.animated }

// IsStable 没有拖动且没有任何引擎处于活动状态
func (s *ScrollSystem) IsStable() bool {
	return !s.inputComponent().AnyEngineActive()
}

// IsTouchActive 是否正在拖动
func (s *ScrollSystem) IsTouchActive() bool {
	return s.inputComponent().IsTouchActive
}

// IsPullToRefreshActive 下拉刷新是否已触发
func (s *ScrollSystem) IsPullToRefreshActive() bool {
	return s.inputComponent().IsPullToRefreshActive
}

// IsDestroyed 是否已销毁
func (s *ScrollSystem) IsDestroyed() bool {
	return s.destroyed
}

// ========== 内部实现 ==========

func (s *ScrollSystem) positionComponent() *components.ScrollPositionComponent {
	comp, ok := ecs.GetComponent[*components.ScrollPositionComponent](s.entityManager, s.entity)
	if !ok {
		return &components.ScrollPositionComponent{}
	}
	return comp
}

func (s *ScrollSystem) inputComponent() *components.ScrollInputComponent {
	comp, ok := ecs.GetComponent[*components.ScrollInputComponent](s.entityManager, s.entity)
	if !ok {
		return &components.ScrollInputComponent{}
	}
	return comp
}

// misuse 销毁后调用修改方法属于调用方错误，记录后忽略
func (s *ScrollSystem) misuse(op string) bool {
	if !s.destroyed {
		return false
	}
	s.logger.Error(nil, "[ScrollSystem] method called after Destroy", "op", op)
	return true
}

// haltEngines 停止所有引擎，期间不触发回弹和稳定检查
func (s *ScrollSystem) haltEngines() {
	s.halting = true
	defer func() { s.halting = false }()

	s.momentum.Stop()
	s.bounce.Stop()
	s.animated.Stop()
}

// haltAnimatedScroll 只停止动画滚动，期间不触发回弹和稳定检查
func (s *ScrollSystem) haltAnimatedScroll() {
	s.halting = true
	defer func() { s.halting = false }()

	s.animated.Stop()
}

// clampToBoundaries 把目标限制在边界内；未启用的轴保持当前位置
func (s *ScrollSystem) clampToBoundaries(target types.Vec2) types.Vec2 {
	pos := s.positionComponent()
	result := pos.Position()
	s.axes.Each(func(a types.Axis) {
		result[a] = pos.Boundaries[a].Clamp(target[a])
	})
	return result
}

// applyPush 应用一次推动
//
// 允许越界时：正在越界且推动方向与越界方向相同，推动量乘以
// 1 - overscroll/maxOverscroll（不小于 0）；惯性推动在系数或推动量低于
// 配置下限时停止该轴惯性，交给回弹接管。越界距离不超过
// max(当前越界, maxOverscroll)。
// 不允许越界时：位置限制在边界上，并停止该轴惯性。
func (s *ScrollSystem) applyPush(push Push, origin PushOrigin) {
	pos := s.positionComponent()
	newPosition := pos.Position()

	maxOverscroll := s.config.MaxTouchOverscroll
	if origin == OriginMomentum {
		maxOverscroll = s.config.MaxMomentumOverscroll
	}

	var stopMomentum [2]bool

	s.axes.Each(func(a types.Axis) {
		p := push[a]
		if p.Px == 0 || p.Direction == types.DirectionNone {
			return
		}

		ap := pos.Axes[a]
		b := pos.Boundaries[a]
		pxToAdd := p.Px * p.Direction.Sign()

		if s.config.Overscroll {
			if ap.Overscroll > 0 && p.Direction == ap.OverscrollDirection {
				multiplier := utils.EaseLinearTimed(ap.Overscroll, 1, -1, maxOverscroll)
				pxToAdd *= multiplier

				if origin == OriginMomentum &&
					(multiplier < s.config.MinMomentumMultiplier || abs(pxToAdd) < s.config.MinMomentumPush) {
					stopMomentum[a] = true
				}
			}

			next := ap.Position + pxToAdd
			limit := maxOverscroll
			if ap.Overscroll > limit {
				limit = ap.Overscroll
			}
			newPosition[a] = utils.Clamp(next, b.Start-limit, b.End+limit)
		} else {
			next := ap.Position + pxToAdd
			if next < b.Start || next > b.End {
				next = b.Clamp(next)
				stopMomentum[a] = true
			}
			newPosition[a] = next
		}
	})

	s.updatePosition(newPosition)

	// 先更新位置再停止惯性，回弹从实际位置开始
	s.axes.Each(func(a types.Axis) {
		if stopMomentum[a] {
			s.momentum.StopOnAxis(a)
		}
	})
}

// recomputeDerived 边界变化后重新计算越界和进度（不发通知）
func (s *ScrollSystem) recomputeDerived() {
	pos := s.positionComponent()
	s.axes.Each(func(a types.Axis) {
		s.deriveAxis(pos, a, pos.Axes[a].Position)
	})
}

// deriveAxis 由位置推导越界、拉动程度和进度
func (s *ScrollSystem) deriveAxis(pos *components.ScrollPositionComponent, a types.Axis, px float64) (progress float64) {
	ap := &pos.Axes[a]
	b := pos.Boundaries[a]

	switch {
	case px < b.Start:
		ap.Overscroll = b.Start - px
		ap.OverscrollDirection = types.DirectionBackward
	case px > b.End:
		ap.Overscroll = px - b.End
		ap.OverscrollDirection = types.DirectionForward
	default:
		ap.Overscroll = 0
		ap.OverscrollDirection = types.DirectionNone
	}

	// 乘以 1.1，否则 1 可能永远达不到
	ap.OverscrollPull = utils.Clamp(ap.Overscroll*1.1/s.config.PullToRefreshOverscroll, 0, 1)

	if r := b.Range(); r > 0 {
		progress = utils.Clamp((px-b.Start)/r, 0, 1)
	}
	return progress
}

// updatePosition 写入权威位置并在变化时发出 positionChange
func (s *ScrollSystem) updatePosition(newPosition types.Vec2) bool {
	pos := s.positionComponent()
	input := s.inputComponent()
	changed := false

	s.axes.Each(func(a types.Axis) {
		px := newPosition[a]
		progress := s.deriveAxis(pos, a, px)
		ap := &pos.Axes[a]

		// 一旦触发，只能由 StopPullToRefresh 解除
		if s.config.PullToRefresh && input.IsTouchActive && ap.OverscrollPull >= 1 {
			input.IsPullToRefreshActive = true
		}

		if ap.Position != px || ap.Progress != progress {
			ap.Position = px
			ap.Progress = progress
			changed = true
		}
	})

	if changed {
		input.IsUnsettled = true
		s.emitPositionChange()
	}
	return changed
}

// checkForBounceStart 对所有轴检查是否需要回弹
func (s *ScrollSystem) checkForBounceStart() {
	s.axes.Each(s.checkForBounceStartOnAxis)
}

// checkForBounceStartOnAxis 没有拖动、动画滚动和该轴惯性，且该轴越界时，回弹到最近的边界
func (s *ScrollSystem) checkForBounceStartOnAxis(axis types.Axis) {
	if s.halting || s.destroyed {
		return
	}
	input := s.inputComponent()
	pos := s.positionComponent()
	ap := pos.Axes[axis]

	if input.IsTouchActive ||
		input.IsAnimatedScroll ||
		input.IsMomentumOnAxis[axis] ||
		ap.OverscrollDirection == types.DirectionNone {
		return
	}

	b := pos.Boundaries[axis]
	target := b.Start
	if ap.OverscrollDirection == types.DirectionForward {
		target = b.End
	}
	if input.IsPullToRefreshActive {
		target += s.config.PullToRefreshMargin * ap.OverscrollDirection.Sign()
	}

	if ap.Position == target {
		return
	}
	if input.IsBouncingOnAxis[axis] && s.bounce.TargetOnAxis(axis) == target {
		return
	}

	s.momentum.StopOnAxis(axis)
	s.bounce.StartOnAxis(axis, ap.Position, target, s.config.BounceDuration())
}

// checkForPositionStable 没有任何活动且位置自上次稳定后有变化时，发出 positionStable
func (s *ScrollSystem) checkForPositionStable() {
	if s.halting || s.destroyed {
		return
	}
	input := s.inputComponent()
	if input.AnyEngineActive() || !input.IsUnsettled {
		return
	}
	input.IsUnsettled = false

	s.logger.V(logging.DEBUG).Info("[ScrollSystem] position stable", "position", s.positionComponent().Position())
	e := s.snapshot()
	for _, l := range s.listenersSnapshot() {
		l.OnPositionStable(e)
	}
}

func (s *ScrollSystem) emitPositionChange() {
	e := s.snapshot()
	for _, l := range s.listenersSnapshot() {
		l.OnPositionChange(e)
	}
}

func (s *ScrollSystem) emitPullToRefresh() {
	s.logger.V(logging.DEBUG).Info("[ScrollSystem] pull to refresh")
	e := s.snapshot()
	for _, l := range s.listenersSnapshot() {
		if pl, ok := l.(PullToRefreshListener); ok {
			pl.OnPullToRefresh(e)
		}
	}
}

// listenersSnapshot 监听方可能在回调中注销自己
func (s *ScrollSystem) listenersSnapshot() []ScrollListener {
	return append([]ScrollListener(nil), s.listeners...)
}

func (s *ScrollSystem) snapshot() ScrollEvent {
	pos := s.positionComponent()
	e := ScrollEvent{
		Position:      pos.Position(),
		Progress:      pos.Progress(),
		IsTouchActive: s.inputComponent().IsTouchActive,
	}
	for _, a := range types.Axes {
		e.Overscroll[a] = pos.Axes[a].Overscroll
		e.OverscrollPull[a] = pos.Axes[a].OverscrollPull
		e.OverscrollDirection[a] = pos.Axes[a].OverscrollDirection
	}
	return e
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ========== 引擎事件适配 ==========

type momentumEvents struct{ s *ScrollSystem }

func (e momentumEvents) OnMomentumStart() {}

func (e momentumEvents) OnMomentumStartOnAxis(axis types.Axis) {
	e.s.inputComponent().IsMomentumOnAxis[axis] = true
}

func (e momentumEvents) OnMomentumPush(push Push) {
	e.s.applyPush(push, OriginMomentum)
}

func (e momentumEvents) OnMomentumStopOnAxis(axis types.Axis) {
	e.s.inputComponent().IsMomentumOnAxis[axis] = false
	e.s.checkForBounceStartOnAxis(axis)
}

func (e momentumEvents) OnMomentumStop() {
	e.s.checkForPositionStable()
}

type bounceEvents struct{ s *ScrollSystem }

func (e bounceEvents) OnBounceStart() {}

func (e bounceEvents) OnBounceStartOnAxis(axis types.Axis) {
	e.s.inputComponent().IsBouncingOnAxis[axis] = true
}

// OnBouncePositionChange 只采用正在回弹的轴，另一个轴可以同时由惯性驱动
func (e bounceEvents) OnBouncePositionChange(position types.Vec2) {
	input := e.s.inputComponent()
	newPosition := e.s.positionComponent().Position()
	for _, a := range types.Axes {
		if input.IsBouncingOnAxis[a] {
			newPosition[a] = position[a]
		}
	}
	e.s.updatePosition(newPosition)
}

func (e bounceEvents) OnBounceEndOnAxis(axis types.Axis) {
	e.s.inputComponent().IsBouncingOnAxis[axis] = false
	e.s.checkForBounceStartOnAxis(axis)
}

func (e bounceEvents) OnBounceEnd() {
	e.s.checkForPositionStable()
}

type animatedScrollEvents struct{ s *ScrollSystem }

func (e animatedScrollEvents) OnAnimatedScrollStart() {
	e.s.inputComponent().IsAnimatedScroll = true
}

func (e animatedScrollEvents) OnAnimatedScrollPositionChange(position types.Vec2) {
	e.s.updatePosition(position)
}

func (e animatedScrollEvents) OnAnimatedScrollStop() {
	e.s.inputComponent().IsAnimatedScroll = false
	e.s.checkForBounceStart()
	e.s.checkForPositionStable()
}
