package utils

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Easing Functions (缓动函数)
//
// 归一化缓动函数接受进度值 t ∈ [0, 1]，返回缓动后的进度。
// EaseFunc 形式（t, b, c, d）用于基于时间的动画：
//   - t: 已经过的时间
//   - b: 起始值
//   - c: 变化量
//   - d: 总时长
//
// 参考：https://easings.net/

// Easing 归一化缓动函数
type Easing func(t float64) float64

// EaseFunc 基于时间的缓动函数，返回 t 时刻的插值
type EaseFunc func(t, b, c, d float64) float64

// 缓动算法名称（配置文件中使用）
const (
	EaseNameLinear       = "linear"
	EaseNameOutCubic     = "easeOutCubic"
	EaseNameInCubic      = "easeInCubic"
	EaseNameInOutCubic   = "easeInOutCubic"
	EaseNameOutQuad      = "easeOutQuad"
	EaseNameInQuad       = "easeInQuad"
	EaseNameOutExpo      = "easeOutExpo"
	EaseNameSpring       = "spring"
	DefaultBounceEaseAlg = EaseNameOutCubic
)

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（回弹的默认曲线）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// 弹簧缓动参数：60 帧步进，欠阻尼（会越过目标再回来）
const (
	springFPS              = 60
	springAngularFrequency = 12.0
	springDampingRatio     = 0.45
)

var spring = harmonica.NewSpring(harmonica.FPS(springFPS), springAngularFrequency, springDampingRatio)

// EaseSpring 基于阻尼弹簧的缓动
//
// 从 0 出发、以 1 为平衡点，按固定帧率步进 t 所对应的帧数。
// 结果不保证单调，可能超过 1，因此调用方必须以时间而不是距离判断动画结束。
func EaseSpring(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	// 把归一化进度映射到一秒钟的弹簧模拟
	frames := int(t * springFPS)
	pos, vel := 0.0, 0.0
	for i := 0; i < frames; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
	}
	return pos
}

// Timed 把归一化缓动转换为 (t, b, c, d) 形式
//
// d <= 0 时直接返回终点值 b + c。
func Timed(ease Easing) EaseFunc {
	return func(t, b, c, d float64) float64 {
		if d <= 0 {
			return b + c
		}
		p := t / d
		if p < 0 {
			p = 0
		} else if p > 1 {
			p = 1
		}
		return b + c*ease(p)
	}
}

// EaseLinearTimed 线性插值，等价于 c*t/d + b
func EaseLinearTimed(t, b, c, d float64) float64 {
	return Timed(EaseLinear)(t, b, c, d)
}

var easingsByName = map[string]Easing{
	EaseNameLinear:     EaseLinear,
	EaseNameOutCubic:   EaseOutCubic,
	EaseNameInCubic:    EaseInCubic,
	EaseNameInOutCubic: EaseInOutCubic,
	EaseNameOutQuad:    EaseOutQuad,
	EaseNameInQuad:     EaseInQuad,
	EaseNameOutExpo:    EaseOutExpo,
	EaseNameSpring:     EaseSpring,
}

// EasingByName 按名称查找缓动函数
func EasingByName(name string) (Easing, bool) {
	e, ok := easingsByName[name]
	return e, ok
}

// EaseFuncByName 按名称查找 (t, b, c, d) 形式的缓动函数
// 找不到时回退到 fallback 对应的函数，fallback 也无效时使用 EaseOutCubic
func EaseFuncByName(name, fallback string) EaseFunc {
	if e, ok := easingsByName[name]; ok {
		return Timed(e)
	}
	if e, ok := easingsByName[fallback]; ok {
		return Timed(e)
	}
	return Timed(EaseOutCubic)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
