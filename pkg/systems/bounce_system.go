package systems

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/decker502/scrollkit/pkg/components"
	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/ecs"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/logging"
	"github.com/decker502/scrollkit/pkg/types"
	"github.com/decker502/scrollkit/pkg/utils"
)

// BounceSystem 回弹引擎
//
// 每个轴独立地在固定时长内从越界位置缓动回边界。
// 是否结束只看经过的时间，不看与目标的距离：弹簧类缓动会越过目标，
// 按距离判断可能提前结束。
type BounceSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	scheduler     frame.Scheduler
	timeProvider  frame.TimeProvider
	config        *config.ScrollConfig
	axes          types.AxisSet
	listener      BounceListener
	logger        logr.Logger

	frame frame.Handle
}

// NewBounceSystem 创建回弹引擎，并把 BounceComponent 挂到 entity 上
func NewBounceSystem(
	em *ecs.EntityManager,
	entity ecs.EntityID,
	scheduler frame.Scheduler,
	timeProvider frame.TimeProvider,
	cfg *config.ScrollConfig,
	listener BounceListener,
	logger logr.Logger,
) *BounceSystem {
	ecs.AddComponent(em, entity, &components.BounceComponent{})
	return &BounceSystem{
		entityManager: em,
		entity:        entity,
		scheduler:     scheduler,
		timeProvider:  timeProvider,
		config:        cfg,
		axes:          cfg.AxisSet(),
		listener:      listener,
		logger:        logger.WithName("bounce"),
	}
}

func (bs *BounceSystem) component() *components.BounceComponent {
	comp, ok := ecs.GetComponent[*components.BounceComponent](bs.entityManager, bs.entity)
	if !ok {
		return &components.BounceComponent{}
	}
	return comp
}

// StartOnAxis 在一个轴上开始（或重新开始）回弹，使用配置的缓动算法
// duration <= 0 时使用配置的回弹时长
func (bs *BounceSystem) StartOnAxis(axis types.Axis, from, to float64, duration time.Duration) {
	bs.StartOnAxisWithEasing(axis, from, to, duration, "")
}

// StartOnAxisWithEasing 同 StartOnAxis，可以指定缓动算法名称
// 名称无效或为空时使用配置的算法
//
// from == to 时立即结束：同步发出位置通知和结束通知，不申请帧。
func (bs *BounceSystem) StartOnAxisWithEasing(axis types.Axis, from, to float64, duration time.Duration, easing string) {
	if !bs.axes.Has(axis) {
		return
	}

	comp := bs.component()
	wasAnyActive := comp.AnyActive()
	wasAxisActive := comp.Axes[axis].IsActive

	bs.scheduler.Cancel(bs.frame)
	bs.frame = 0

	if duration <= 0 {
		duration = bs.config.BounceDuration()
	}

	comp.Axes[axis] = components.AxisBounce{
		IsActive:        true,
		StartPosition:   from,
		CurrentPosition: from,
		TargetPosition:  to,
		StartTime:       bs.timeProvider.Now(),
		Duration:        duration,
		Ease:            utils.EaseFuncByName(easing, bs.config.BounceEasing),
	}

	if !wasAnyActive {
		bs.logger.V(logging.DEBUG).Info("[BounceSystem] bounce started")
		bs.listener.OnBounceStart()
	}
	if !wasAxisActive {
		bs.logger.V(logging.DEBUG).Info("[BounceSystem] bounce started on axis", "axis", axis, "from", from, "to", to, "duration", duration)
		bs.listener.OnBounceStartOnAxis(axis)
	}

	if from == to {
		comp.Axes[axis].CurrentPosition = to
		bs.listener.OnBouncePositionChange(comp.CurrentPosition())
		bs.StopOnAxis(axis)
	}

	if comp.AnyActive() {
		bs.frame = bs.scheduler.Request(bs)
	}
}

// Stop 立即结束所有轴的回弹，同步发出结束通知
func (bs *BounceSystem) Stop() {
	bs.axes.Each(bs.StopOnAxis)
}

// StopOnAxis 立即结束一个轴的回弹；未激活时为空操作
func (bs *BounceSystem) StopOnAxis(axis types.Axis) {
	if !bs.axes.Has(axis) {
		return
	}
	comp := bs.component()
	if !comp.Axes[axis].IsActive {
		return
	}

	comp.Axes[axis].IsActive = false
	bs.logger.V(logging.DEBUG).Info("[BounceSystem] bounce ended on axis", "axis", axis, "position", comp.Axes[axis].CurrentPosition)
	bs.listener.OnBounceEndOnAxis(axis)

	if !comp.AnyActive() {
		bs.scheduler.Cancel(bs.frame)
		bs.frame = 0
		bs.logger.V(logging.DEBUG).Info("[BounceSystem] bounce ended")
		bs.listener.OnBounceEnd()
	}
}

// Tick 推进一帧
//
// 先计算所有轴，再发出一次合并的位置通知，最后结束已到时的轴。
// 即使某个轴在本帧结束，位置通知也会携带它的精确目标值。
func (bs *BounceSystem) Tick() {
	bs.frame = 0
	comp := bs.component()
	if !comp.AnyActive() {
		return
	}

	now := bs.timeProvider.Now()
	var finished [2]bool

	bs.axes.Each(func(a types.Axis) {
		b := &comp.Axes[a]
		if !b.IsActive {
			return
		}
		elapsed := now.Sub(b.StartTime)
		if elapsed < b.Duration {
			b.CurrentPosition = b.Ease(
				float64(elapsed)/float64(time.Millisecond),
				b.StartPosition,
				b.TargetPosition-b.StartPosition,
				float64(b.Duration)/float64(time.Millisecond),
			)
		} else {
			b.CurrentPosition = b.TargetPosition
			finished[a] = true
		}
	})

	bs.logger.V(logging.TRACE).Info("[BounceSystem] position", "position", comp.CurrentPosition())
	bs.listener.OnBouncePositionChange(comp.CurrentPosition())

	bs.axes.Each(func(a types.Axis) {
		if finished[a] {
			bs.StopOnAxis(a)
		}
	})

	if comp.AnyActive() && bs.frame == 0 {
		bs.frame = bs.scheduler.Request(bs)
	}
}

// IsActive 是否有任一轴处于回弹中
func (bs *BounceSystem) IsActive() bool {
	return bs.component().AnyActive()
}

// IsActiveOnAxis 指定轴是否处于回弹中
func (bs *BounceSystem) IsActiveOnAxis(axis types.Axis) bool {
	if !bs.axes.Has(axis) {
		return false
	}
	return bs.component().Axes[axis].IsActive
}

// TargetOnAxis 指定轴的回弹目标
func (bs *BounceSystem) TargetOnAxis(axis types.Axis) float64 {
	if !bs.axes.Has(axis) {
		return 0
	}
	return bs.component().Axes[axis].TargetPosition
}
