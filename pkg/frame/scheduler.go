// Package frame 提供帧驱动的协作式调度
//
// 所有模拟推进都发生在帧回调里（每渲染一帧一次 tick），不使用真实的并行线程。
// 引擎只在有活动工作时申请下一帧，停止时取消已申请的帧。
// Loop 由外部驱动（游戏循环的 Update 或测试中的 Step），自身不做任何计时。
package frame

// Ticker 可以被帧调度器回调的对象
type Ticker interface {
	Tick()
}

// TickerFunc 函数适配器
type TickerFunc func()

// Tick 调用函数本身
func (f TickerFunc) Tick() { f() }

// Handle 已申请帧的句柄，零值表示无效句柄
type Handle uint64

// Scheduler 帧调度器接口
//
// Request 申请在下一帧调用 t.Tick()；Cancel 取消尚未执行的申请。
// Cancel 是幂等的：对已执行、已取消或零值句柄调用都是空操作。
type Scheduler interface {
	Request(t Ticker) Handle
	Cancel(h Handle)
}

type pending struct {
	handle Handle
	ticker Ticker
}

// Loop 单线程帧循环
//
// 与浏览器的 requestAnimationFrame 语义一致：在 Step 执行期间新申请的帧
// 会在下一次 Step 时才执行。
// 非并发安全，只能在同一个 goroutine（游戏循环）中使用。
type Loop struct {
	nextHandle Handle
	queue      []pending
	running    []pending // 当前 Step 正在执行的批次
	frameCount uint64
}

// NewLoop 创建帧循环
func NewLoop() *Loop {
	return &Loop{nextHandle: 1}
}

// Request 申请下一帧回调
func (l *Loop) Request(t Ticker) Handle {
	if t == nil {
		return 0
	}
	h := l.nextHandle
	l.nextHandle++
	l.queue = append(l.queue, pending{handle: h, ticker: t})
	return h
}

// Cancel 取消帧申请
func (l *Loop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	// 回调可能取消同一帧中排在后面的申请，所以两批都要查
	for _, batch := range [][]pending{l.running, l.queue} {
		for i := range batch {
			if batch[i].handle == h {
				// 原地置空，保持执行顺序；Step 会跳过
				batch[i].ticker = nil
				return
			}
		}
	}
}

// Step 执行一帧：按申请顺序调用本帧之前申请的所有回调
// 返回本帧实际执行的回调数量
func (l *Loop) Step() int {
	l.frameCount++
	l.running = l.queue
	l.queue = nil

	ran := 0
	for i := range l.running {
		t := l.running[i].ticker
		if t == nil {
			continue
		}
		l.running[i].ticker = nil
		t.Tick()
		ran++
	}
	l.running = nil
	return ran
}

// Pending 返回尚未执行的有效申请数量
func (l *Loop) Pending() int {
	n := 0
	for _, p := range l.queue {
		if p.ticker != nil {
			n++
		}
	}
	return n
}

// Idle 没有待执行的申请
func (l *Loop) Idle() bool {
	return l.Pending() == 0
}

// FrameCount 已执行的帧数
func (l *Loop) FrameCount() uint64 {
	return l.frameCount
}

// RunUntilIdle 反复执行 Step 直到没有待执行申请或达到 maxFrames
// 返回执行的帧数；主要用于测试和无界面驱动
func (l *Loop) RunUntilIdle(maxFrames int) int {
	frames := 0
	for frames < maxFrames && !l.Idle() {
		l.Step()
		frames++
	}
	return frames
}
