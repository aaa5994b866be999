// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"math"
	"strings"
)

// Axis 滚动轴
type Axis int

const (
	// AxisX 水平轴
	AxisX Axis = iota
	// AxisY 垂直轴
	AxisY
)

// Axes 按固定顺序（先 x 后 y）列出所有轴
var Axes = [2]Axis{AxisX, AxisY}

// String 返回轴的字符串表示
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// AxisSet 启用的轴集合，构造后不可变
type AxisSet struct {
	enabled [2]bool
}

// NewAxisSet 根据给定的轴创建集合
func NewAxisSet(axes ...Axis) AxisSet {
	var s AxisSet
	for _, a := range axes {
		if a == AxisX || a == AxisY {
			s.enabled[a] = true
		}
	}
	return s
}

// ParseAxisSet 解析 "x"、"y"、"xy" 形式的配置值
// 空字符串表示两个轴都不启用
func ParseAxisSet(value string) (AxisSet, error) {
	var s AxisSet
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch r {
		case 'x':
			s.enabled[AxisX] = true
		case 'y':
			s.enabled[AxisY] = true
		default:
			return AxisSet{}, fmt.Errorf("unknown axis %q in %q", r, value)
		}
	}
	return s, nil
}

// Has 检查轴是否启用
func (s AxisSet) Has(a Axis) bool {
	if a != AxisX && a != AxisY {
		return false
	}
	return s.enabled[a]
}

// Each 按 x、y 顺序对每个启用的轴执行 fn
func (s AxisSet) Each(fn func(a Axis)) {
	for _, a := range Axes {
		if s.enabled[a] {
			fn(a)
		}
	}
}

// Empty 是否没有启用任何轴
func (s AxisSet) Empty() bool {
	return !s.enabled[AxisX] && !s.enabled[AxisY]
}

// String 返回 "x"、"y"、"xy" 或 ""
func (s AxisSet) String() string {
	var b strings.Builder
	s.Each(func(a Axis) { b.WriteString(a.String()) })
	return b.String()
}

// Vec2 以轴为下标的二维数值
type Vec2 [2]float64

// V2 便捷构造函数
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// X 返回水平分量
func (v Vec2) X() float64 { return v[AxisX] }

// Y 返回垂直分量
func (v Vec2) Y() float64 { return v[AxisY] }

// Distance 返回两点之间的欧氏距离
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o[AxisX]-v[AxisX], o[AxisY]-v[AxisY])
}

// Direction 一维方向：-1、0 或 1
type Direction int

const (
	// DirectionBackward 朝轴起点方向
	DirectionBackward Direction = -1
	// DirectionNone 无方向
	DirectionNone Direction = 0
	// DirectionForward 朝轴终点方向
	DirectionForward Direction = 1
)

// Sign 返回方向的浮点符号
func (d Direction) Sign() float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// DirectionOf 根据数值符号返回方向
func DirectionOf(v float64) Direction {
	switch {
	case v > 0:
		return DirectionForward
	case v < 0:
		return DirectionBackward
	default:
		return DirectionNone
	}
}
