package systems

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/decker502/scrollkit/pkg/components"
	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/ecs"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/logging"
	"github.com/decker502/scrollkit/pkg/types"
)

const (
	// arrivalDistance 距离目标小于此值视为到达（像素）
	arrivalDistance = 1.0

	// overshootEpsilon 越过目标的判定容差（像素），两个方向对称
	overshootEpsilon = 0.5
)

// AnimatedScrollSystem 定向动画滚动引擎
//
// 启动时计算一次方向角 atan2(Δy, Δx)，两个轴按 (cos, sin) 权重同步前进。
// 距离目标小于减速距离后速度按 distance/slowingDistance 线性递减。
// 目标的边界限制由调用方（协调器）负责。
type AnimatedScrollSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	scheduler     frame.Scheduler
	config        *config.ScrollConfig
	axes          types.AxisSet
	listener      AnimatedScrollListener
	logger        logr.Logger

	frame frame.Handle
}

// NewAnimatedScrollSystem 创建动画滚动引擎，并把 AnimatedScrollComponent 挂到 entity 上
func NewAnimatedScrollSystem(
	em *ecs.EntityManager,
	entity ecs.EntityID,
	scheduler frame.Scheduler,
	cfg *config.ScrollConfig,
	listener AnimatedScrollListener,
	logger logr.Logger,
) *AnimatedScrollSystem {
	ecs.AddComponent(em, entity, &components.AnimatedScrollComponent{})
	return &AnimatedScrollSystem{
		entityManager: em,
		entity:        entity,
		scheduler:     scheduler,
		config:        cfg,
		axes:          cfg.AxisSet(),
		listener:      listener,
		logger:        logger.WithName("animated-scroll"),
	}
}

func (as *AnimatedScrollSystem) component() *components.AnimatedScrollComponent {
	comp, ok := ecs.GetComponent[*components.AnimatedScrollComponent](as.entityManager, as.entity)
	if !ok {
		return &components.AnimatedScrollComponent{}
	}
	return comp
}

// Start 从 current 向 target 开始动画滚动
//
// speed <= 0 时使用配置的最大速度。未启用的轴保持 current 不动。
// 起点与终点距离小于 1 像素时同步结束：发出最终位置通知后停止，不申请帧。
func (as *AnimatedScrollSystem) Start(current, target types.Vec2, speed float64) {
	comp := as.component()
	wasActive := comp.IsActive

	as.scheduler.Cancel(as.frame)
	as.frame = 0

	comp.StartPosition = current
	comp.CurrentPosition = current
	// 只为启用的轴设置目标，其余轴目标等于当前位置
	comp.TargetPosition = current
	as.axes.Each(func(a types.Axis) {
		comp.TargetPosition[a] = target[a]
	})
	comp.TotalDistance = comp.StartPosition.Distance(comp.TargetPosition)

	dx := comp.TargetPosition[types.AxisX] - comp.StartPosition[types.AxisX]
	dy := comp.TargetPosition[types.AxisY] - comp.StartPosition[types.AxisY]
	comp.Radians = math.Atan2(dy, dx)
	comp.Direction = types.V2(math.Cos(comp.Radians), math.Sin(comp.Radians))

	if speed <= 0 {
		speed = as.config.MaxScrollSpeed
	}
	comp.MaxPxPerFrame = speed
	comp.PxPerFrame = speed
	comp.IsActive = true

	if !wasActive {
		as.logger.V(logging.DEBUG).Info("[AnimatedScrollSystem] animated scroll started",
			"from", comp.StartPosition, "to", comp.TargetPosition, "pxPerFrame", speed)
		as.listener.OnAnimatedScrollStart()
	}

	if comp.TotalDistance < arrivalDistance {
		as.finish()
		return
	}

	as.frame = as.scheduler.Request(as)
}

// Stop 速度清零并立即停止；未激活时为空操作
func (as *AnimatedScrollSystem) Stop() {
	comp := as.component()
	if !comp.IsActive {
		return
	}

	comp.PxPerFrame = 0
	comp.IsActive = false
	as.scheduler.Cancel(as.frame)
	as.frame = 0

	as.logger.V(logging.DEBUG).Info("[AnimatedScrollSystem] animated scroll stopped", "position", comp.CurrentPosition)
	as.listener.OnAnimatedScrollStop()
}

// Tick 推进一帧
func (as *AnimatedScrollSystem) Tick() {
	as.frame = 0
	comp := as.component()
	if !comp.IsActive {
		return
	}

	distance := comp.CurrentPosition.Distance(comp.TargetPosition)

	// 接近目标时减速
	if slowing := as.config.ScrollSlowingDistance; slowing > 0 && distance < slowing {
		comp.PxPerFrame = comp.MaxPxPerFrame * (distance / slowing)
	}

	if distance < arrivalDistance || comp.PxPerFrame < as.config.MinScrollSpeed || as.passedTarget(comp) {
		as.finish()
		return
	}

	as.axes.Each(func(a types.Axis) {
		comp.CurrentPosition[a] += comp.PxPerFrame * comp.Direction[a]
	})

	// 这一步越过了目标：不发出越界的中间位置，直接吸附
	if as.passedTarget(comp) {
		as.finish()
		return
	}

	as.logger.V(logging.TRACE).Info("[AnimatedScrollSystem] position", "position", comp.CurrentPosition, "pxPerFrame", comp.PxPerFrame)
	as.listener.OnAnimatedScrollPositionChange(comp.CurrentPosition)

	if comp.IsActive && as.frame == 0 {
		as.frame = as.scheduler.Request(as)
	}
}

// finish 吸附到目标，发出最终位置通知后停止
func (as *AnimatedScrollSystem) finish() {
	comp := as.component()
	comp.CurrentPosition = comp.TargetPosition
	as.listener.OnAnimatedScrollPositionChange(comp.TargetPosition)
	as.Stop()
}

// passedTarget 按方向符号逐轴检查是否已越过目标
func (as *AnimatedScrollSystem) passedTarget(comp *components.AnimatedScrollComponent) bool {
	passed := false
	as.axes.Each(func(a types.Axis) {
		w := comp.Direction[a]
		cur, tgt := comp.CurrentPosition[a], comp.TargetPosition[a]
		switch {
		case w > 0 && cur > tgt+overshootEpsilon:
			passed = true
		case w < 0 && cur < tgt-overshootEpsilon:
			passed = true
		}
	})
	return passed
}

// IsActive 是否正在动画滚动
func (as *AnimatedScrollSystem) IsActive() bool {
	return as.component().IsActive
}

// Target 当前动画的目标位置
func (as *AnimatedScrollSystem) Target() types.Vec2 {
	return as.component().TargetPosition
}

// Direction 方向向量 (cos, sin)
func (as *AnimatedScrollSystem) Direction() types.Vec2 {
	return as.component().Direction
}

// Speed 当前速度（像素/帧）
func (as *AnimatedScrollSystem) Speed() float64 {
	return as.component().PxPerFrame
}
