package frame

import (
	"sync"
	"time"
)

// TimeProvider 时间源
// 基于时间的动画（回弹）通过它读取当前时间，测试中可替换为 MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider 系统单调时钟
type RealTimeProvider struct{}

// NewRealTimeProvider 创建系统时间源
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now 返回带单调时钟读数的当前时间
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider 可控时间源，用于测试
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider 以给定起始时间创建
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now 返回当前模拟时间
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance 推进时间
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameDuration 60 FPS 下一帧的时长
const FrameDuration = time.Second / 60

// Clocked 把帧循环和模拟时间源绑在一起：每步先推进时间再执行一帧
// 方便在测试或无界面环境中以固定帧率驱动
type Clocked struct {
	*Loop
	Time  *MockTimeProvider
	Frame time.Duration
}

// NewClocked 创建固定帧率的驱动器，frameDuration <= 0 时使用 FrameDuration
func NewClocked(start time.Time, frameDuration time.Duration) *Clocked {
	if frameDuration <= 0 {
		frameDuration = FrameDuration
	}
	return &Clocked{
		Loop:  NewLoop(),
		Time:  NewMockTimeProvider(start),
		Frame: frameDuration,
	}
}

// Step 推进一帧时间并执行回调
func (c *Clocked) Step() int {
	c.Time.Advance(c.Frame)
	return c.Loop.Step()
}

// RunUntilIdle 以固定帧率执行直到空闲或达到 maxFrames
func (c *Clocked) RunUntilIdle(maxFrames int) int {
	frames := 0
	for frames < maxFrames && !c.Idle() {
		c.Step()
		frames++
	}
	return frames
}
