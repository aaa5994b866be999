package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizedEasings 测试归一化缓动函数的关键点
func TestNormalizedEasings(t *testing.T) {
	tests := []struct {
		name     string
		ease     Easing
		input    float64
		expected float64
	}{
		{"线性-中点", EaseLinear, 0.5, 0.5},
		{"三次缓出-起点", EaseOutCubic, 0.0, 0.0},
		{"三次缓出-中点", EaseOutCubic, 0.5, 0.875}, // 1 - 0.5^3
		{"三次缓出-终点", EaseOutCubic, 1.0, 1.0},
		{"三次缓入-中点", EaseInCubic, 0.5, 0.125},
		{"三次缓入缓出-四分之一", EaseInOutCubic, 0.25, 0.0625}, // 4 * 0.25^3
		{"三次缓入缓出-中点", EaseInOutCubic, 0.5, 0.5},
		{"二次缓出-中点", EaseOutQuad, 0.5, 0.75},
		{"二次缓入-中点", EaseInQuad, 0.5, 0.25},
		{"指数缓出-终点", EaseOutExpo, 1.0, 1.0},
		{"弹簧-起点", EaseSpring, 0.0, 0.0},
		{"弹簧-终点", EaseSpring, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.ease(tt.input), 0.001)
		})
	}
}

// TestEaseOutCubic_AheadOfLinear 缓出曲线全程不落后于线性
func TestEaseOutCubic_AheadOfLinear(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.1 {
		assert.GreaterOrEqual(t, EaseOutCubic(p), EaseLinear(p)-0.001, "p=%v", p)
	}
}

// TestEaseSpring_Overshoots 欠阻尼弹簧会越过目标
func TestEaseSpring_Overshoots(t *testing.T) {
	peak := 0.0
	for p := 0.0; p < 1.0; p += 0.01 {
		if v := EaseSpring(p); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "弹簧缓动应该出现过冲")
}

// TestTimed 测试 (t, b, c, d) 形式
func TestTimed(t *testing.T) {
	ease := Timed(EaseOutCubic)

	tests := []struct {
		name     string
		t, b, c  float64
		d        float64
		expected float64
	}{
		{"起点", 0, 520, -20, 500, 520},
		{"中点", 250, 520, -20, 500, 520 - 20*0.875},
		{"终点", 500, 520, -20, 500, 500},
		{"超时按终点计算", 900, 520, -20, 500, 500},
		{"时长为零直接到终点", 10, 520, -20, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ease(tt.t, tt.b, tt.c, tt.d), 0.001)
		})
	}
}

// TestEaseLinearTimed_DampingFactor 线性缓动作为阻尼系数：从 1 递减到 0
func TestEaseLinearTimed_DampingFactor(t *testing.T) {
	assert.InDelta(t, 1.0, EaseLinearTimed(0, 1, -1, 150), 1e-9)
	assert.InDelta(t, 0.5, EaseLinearTimed(75, 1, -1, 150), 1e-9)
	assert.InDelta(t, 0.0, EaseLinearTimed(150, 1, -1, 150), 1e-9)
	assert.InDelta(t, 0.0, EaseLinearTimed(400, 1, -1, 150), 1e-9, "超过最大值时不应变为负数")
}

// TestEaseFuncByName 测试按名称查找
func TestEaseFuncByName(t *testing.T) {
	_, ok := EasingByName(EaseNameInOutCubic)
	require.True(t, ok)

	_, ok = EasingByName("bogus")
	assert.False(t, ok)

	// 无效名称回退到 fallback
	f := EaseFuncByName("bogus", EaseNameLinear)
	assert.InDelta(t, 50.0, f(50, 0, 100, 100), 1e-9)

	// fallback 也无效时使用三次缓出
	f = EaseFuncByName("bogus", "also-bogus")
	assert.InDelta(t, 87.5, f(50, 0, 100, 100), 1e-9)
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Lerp(tt.a, tt.b, tt.t), 0.001)
		})
	}
}

// TestClamp 测试范围限制
func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.0, Clamp(7, 0, 10))
}
