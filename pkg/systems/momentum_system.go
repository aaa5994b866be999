package systems

import (
	"github.com/go-logr/logr"

	"github.com/decker502/scrollkit/pkg/components"
	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/ecs"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/logging"
	"github.com/decker502/scrollkit/pkg/types"
)

// MomentumSystem 惯性引擎
//
// 把拖动结束时的初速度转换成逐帧递减的推动。
// 每帧对每个活动轴：速度 >= 最小速度时发出推动并减去固定衰减量；
// 否则停止该轴。只要还有活动轴就申请下一帧。
type MomentumSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	scheduler     frame.Scheduler
	config        *config.ScrollConfig
	axes          types.AxisSet
	listener      MomentumListener
	logger        logr.Logger

	frame frame.Handle
}

// NewMomentumSystem 创建惯性引擎，并把 MomentumComponent 挂到 entity 上
func NewMomentumSystem(
	em *ecs.EntityManager,
	entity ecs.EntityID,
	scheduler frame.Scheduler,
	cfg *config.ScrollConfig,
	listener MomentumListener,
	logger logr.Logger,
) *MomentumSystem {
	ecs.AddComponent(em, entity, &components.MomentumComponent{})
	return &MomentumSystem{
		entityManager: em,
		entity:        entity,
		scheduler:     scheduler,
		config:        cfg,
		axes:          cfg.AxisSet(),
		listener:      listener,
		logger:        logger.WithName("momentum"),
	}
}

func (ms *MomentumSystem) component() *components.MomentumComponent {
	comp, ok := ecs.GetComponent[*components.MomentumComponent](ms.entityManager, ms.entity)
	if !ok {
		// 实体已销毁时返回一个空状态，所有操作都变成空操作
		return &components.MomentumComponent{}
	}
	return comp
}

// Start 按轴启动惯性
//
// 速度 <= 0 或方向为 0 的轴被忽略；超过最大速度的会被截断。
// 新激活的轴发出 OnMomentumStartOnAxis；启动前没有任何活动轴时额外发出 OnMomentumStart。
func (ms *MomentumSystem) Start(velocity Velocity) {
	comp := ms.component()
	wasActive := [2]bool{comp.Axes[types.AxisX].IsActive, comp.Axes[types.AxisY].IsActive}

	started := false
	ms.axes.Each(func(a types.Axis) {
		v := velocity[a]
		if v.PxPerFrame <= 0 || v.Direction == types.DirectionNone {
			return
		}
		speed := v.PxPerFrame
		if speed > ms.config.MaxMomentumSpeed {
			speed = ms.config.MaxMomentumSpeed
		}
		comp.Axes[a] = components.AxisMomentum{
			IsActive:   true,
			Direction:  v.Direction,
			PxPerFrame: speed,
		}
		started = true
	})

	if !started {
		return
	}

	ms.scheduler.Cancel(ms.frame)
	ms.frame = ms.scheduler.Request(ms)

	if !wasActive[types.AxisX] && !wasActive[types.AxisY] {
		ms.logger.V(logging.DEBUG).Info("[MomentumSystem] momentum started")
		ms.listener.OnMomentumStart()
	}
	ms.axes.Each(func(a types.Axis) {
		if comp.Axes[a].IsActive && !wasActive[a] {
			ms.logger.V(logging.DEBUG).Info("[MomentumSystem] momentum started on axis", "axis", a, "pxPerFrame", comp.Axes[a].PxPerFrame)
			ms.listener.OnMomentumStartOnAxis(a)
		}
	})
}

// StartOnAxis 只在一个轴上启动惯性
func (ms *MomentumSystem) StartOnAxis(axis types.Axis, v AxisVelocity) {
	if !ms.axes.Has(axis) {
		return
	}
	var velocity Velocity
	velocity[axis] = v
	ms.Start(velocity)
}

// Stop 立即停止所有轴
func (ms *MomentumSystem) Stop() {
	ms.axes.Each(ms.StopOnAxis)
}

// StopOnAxis 立即停止一个轴；该轴未激活时为空操作
// 最后一个活动轴停止时取消已申请的帧并发出 OnMomentumStop
func (ms *MomentumSystem) StopOnAxis(axis types.Axis) {
	if !ms.axes.Has(axis) {
		return
	}
	comp := ms.component()
	if !comp.Axes[axis].IsActive {
		return
	}

	comp.Axes[axis] = components.AxisMomentum{}
	ms.logger.V(logging.DEBUG).Info("[MomentumSystem] momentum stopped on axis", "axis", axis)
	ms.listener.OnMomentumStopOnAxis(axis)

	if !comp.AnyActive() {
		ms.scheduler.Cancel(ms.frame)
		ms.frame = 0
		ms.logger.V(logging.DEBUG).Info("[MomentumSystem] momentum stopped")
		ms.listener.OnMomentumStop()
	}
}

// Tick 推进一帧
func (ms *MomentumSystem) Tick() {
	ms.frame = 0
	comp := ms.component()
	if !comp.AnyActive() {
		return
	}

	var push Push
	ms.axes.Each(func(a types.Axis) {
		m := &comp.Axes[a]
		if !m.IsActive {
			return
		}
		if m.PxPerFrame >= ms.config.MinMomentumSpeed {
			push[a] = PushBy{Direction: m.Direction, Px: m.PxPerFrame}
			m.PxPerFrame -= ms.config.MomentumDecayPerFrame
		} else {
			ms.StopOnAxis(a)
		}
	})

	// 最后一个轴在上面停止时，StopOnAxis 已经发出全局停止通知
	if !comp.AnyActive() {
		return
	}

	ms.logger.V(logging.TRACE).Info("[MomentumSystem] push", "x", push[types.AxisX], "y", push[types.AxisY])
	ms.listener.OnMomentumPush(push)

	// 监听方可能在处理推动时停止了惯性
	if comp.AnyActive() {
		ms.frame = ms.scheduler.Request(ms)
	}
}

// IsActive 是否有任一轴处于惯性中
func (ms *MomentumSystem) IsActive() bool {
	return ms.component().AnyActive()
}

// IsActiveOnAxis 指定轴是否处于惯性中
func (ms *MomentumSystem) IsActiveOnAxis(axis types.Axis) bool {
	if !ms.axes.Has(axis) {
		return false
	}
	return ms.component().Axes[axis].IsActive
}

// Speed 指定轴的当前速度（像素/帧）
func (ms *MomentumSystem) Speed(axis types.Axis) float64 {
	if !ms.axes.Has(axis) {
		return 0
	}
	return ms.component().Axes[axis].PxPerFrame
}
