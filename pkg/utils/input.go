// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/scrollkit/pkg/types"
)

// PointerSample 一帧的指针采样，统一鼠标和触摸
type PointerSample struct {
	// Pressed 指针是否按下
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// TouchID 触摸 ID，鼠标为 -1
	TouchID ebiten.TouchID
}

// IsTouch 是否来自触摸输入
func (s PointerSample) IsTouch() bool {
	return s.TouchID >= 0
}

// 保存最后一次触摸位置（触摸释放的那一帧已经读不到位置）
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
// 优先使用第一个活动的触摸，没有触摸时使用鼠标左键
func ReadPointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return PointerSample{Pressed: true, X: x, Y: y, TouchID: touchIDs[0]}
	}

	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerSample{Pressed: false, X: lastTouchX, Y: lastTouchY, TouchID: -1}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
}

// ReadWheel 读取本帧的滚轮偏移
func ReadWheel() types.Vec2 {
	x, y := ebiten.Wheel()
	return types.V2(x, y)
}

// ============================================================================
// 拖拽跟踪 - 把指针采样转换成逐帧位移和松手速度
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回状态名称
func (s DragState) String() string {
	switch s {
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	default:
		return "none"
	}
}

// velocitySamples 估算松手速度时使用的最近帧数
const velocitySamples = 4

// DragTracker 拖拽跟踪器
//
// 每帧喂入一次指针采样。Delta 是本帧相对上一帧的指针位移；
// 结束的那一帧 ReleaseVelocity 给出最近几帧的平均位移（像素/帧）。
// 不读取任何全局输入状态，可以在测试中直接驱动。
type DragTracker struct {
	state DragState

	startX, startY     int
	currentX, currentY int
	delta              types.Vec2

	// recent 最近几帧的位移，环形缓冲
	recent [velocitySamples]types.Vec2
	count  int
	next   int
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Update 推进一帧（每帧调用一次）
func (dt *DragTracker) Update(s PointerSample) {
	dt.delta = types.Vec2{}

	switch dt.state {
	case DragStateNone, DragStateEnded:
		if dt.state == DragStateEnded {
			dt.Reset()
		}
		if s.Pressed {
			dt.state = DragStateStarted
			dt.startX, dt.startY = s.X, s.Y
			dt.currentX, dt.currentY = s.X, s.Y
		}

	case DragStateStarted, DragStateDragging:
		if !s.Pressed {
			dt.state = DragStateEnded
			return
		}
		dt.state = DragStateDragging
		dt.delta = types.V2(float64(s.X-dt.currentX), float64(s.Y-dt.currentY))
		dt.currentX, dt.currentY = s.X, s.Y
		dt.record(dt.delta)
	}
}

func (dt *DragTracker) record(d types.Vec2) {
	dt.recent[dt.next] = d
	dt.next = (dt.next + 1) % velocitySamples
	if dt.count < velocitySamples {
		dt.count++
	}
}

// Reset 重置拖拽状态
func (dt *DragTracker) Reset() {
	*dt = DragTracker{}
}

// State 当前拖拽状态
func (dt *DragTracker) State() DragState {
	return dt.state
}

// JustStarted 是否刚开始拖拽（本帧）
func (dt *DragTracker) JustStarted() bool {
	return dt.state == DragStateStarted
}

// IsDragging 是否正在拖拽
func (dt *DragTracker) IsDragging() bool {
	return dt.state == DragStateDragging
}

// JustEnded 是否刚结束拖拽（本帧）
func (dt *DragTracker) JustEnded() bool {
	return dt.state == DragStateEnded
}

// Delta 本帧的指针位移
func (dt *DragTracker) Delta() types.Vec2 {
	return dt.delta
}

// Distance 从起点到当前位置的位移
func (dt *DragTracker) Distance() types.Vec2 {
	return types.V2(float64(dt.currentX-dt.startX), float64(dt.currentY-dt.startY))
}

// ReleaseVelocity 最近几帧的平均位移（像素/帧），没有样本时为 0
func (dt *DragTracker) ReleaseVelocity() types.Vec2 {
	if dt.count == 0 {
		return types.Vec2{}
	}
	var sum types.Vec2
	for i := 0; i < dt.count; i++ {
		sum[types.AxisX] += dt.recent[i][types.AxisX]
		sum[types.AxisY] += dt.recent[i][types.AxisY]
	}
	n := float64(dt.count)
	return types.V2(sum.X()/n, sum.Y()/n)
}
