package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/scrollkit/pkg/types"
	"github.com/decker502/scrollkit/pkg/utils"
)

var (
	// ErrInvalidAxis axis 取值不是 x、y、xy 之一
	ErrInvalidAxis = errors.New("invalid axis")
	// ErrInvalidValue 数值配置超出允许范围
	ErrInvalidValue = errors.New("invalid value")
)

// ScrollConfig 滚动引擎配置
//
// 配置文件位置: data/scroll.yaml（可选，缺省字段使用默认值）
type ScrollConfig struct {
	// Axis 允许滚动的轴："x"、"y" 或 "xy"
	Axis string `yaml:"axis"`

	// Overscroll 允许越过边界的弹性滚动
	Overscroll bool `yaml:"overscroll"`

	// RefreshOnResize 收到尺寸变化通知时自动刷新边界
	RefreshOnResize bool `yaml:"refreshOnResize"`

	// MaxTouchOverscroll 拖动时的最大越界距离（像素）
	MaxTouchOverscroll float64 `yaml:"maxTouchOverscroll"`

	// MaxMomentumOverscroll 惯性时的最大越界距离（像素）
	// 比拖动小，惯性越界会更快结束
	MaxMomentumOverscroll float64 `yaml:"maxMomentumOverscroll"`

	// MinMomentumPush 越界阻尼后推动量低于此值时停止惯性
	MinMomentumPush float64 `yaml:"minMomentumPush"`

	// MinMomentumMultiplier 阻尼系数低于此值时停止惯性
	MinMomentumMultiplier float64 `yaml:"minMomentumMultiplier"`

	// BounceDurationMs 回弹时长（毫秒）
	BounceDurationMs float64 `yaml:"bounceDurationMs"`

	// BounceEasing 回弹缓动算法名称
	BounceEasing string `yaml:"bounceEasing"`

	// MaxScrollSpeed 动画滚动最大速度（像素/帧）
	MaxScrollSpeed float64 `yaml:"maxScrollSpeed"`

	// MinScrollSpeed 动画滚动最小速度，低于此值时结束
	MinScrollSpeed float64 `yaml:"minScrollSpeed"`

	// ScrollSlowingDistance 距离目标小于此值时开始减速（像素）
	ScrollSlowingDistance float64 `yaml:"scrollSlowingDistance"`

	// MaxMomentumSpeed 惯性可达到的最大速度（像素/帧）
	MaxMomentumSpeed float64 `yaml:"maxMomentumSpeed"`

	// MinMomentumSpeed 惯性速度低于此值时停止
	MinMomentumSpeed float64 `yaml:"minMomentumSpeed"`

	// MomentumDecayPerFrame 每帧速度衰减量
	MomentumDecayPerFrame float64 `yaml:"momentumDecayPerFrame"`

	// PullToRefresh 启用下拉刷新
	PullToRefresh bool `yaml:"pullToRefresh"`

	// PullToRefreshOverscroll 触发下拉刷新需要的越界距离
	PullToRefreshOverscroll float64 `yaml:"pullToRefreshOverscroll"`

	// PullToRefreshMargin 刷新期间保持的越界距离
	PullToRefreshMargin float64 `yaml:"pullToRefreshMargin"`
}

// DefaultScrollConfig 返回默认配置
func DefaultScrollConfig() *ScrollConfig {
	return &ScrollConfig{
		Axis:                    "y",
		Overscroll:              true,
		RefreshOnResize:         true,
		MaxTouchOverscroll:      150,
		MaxMomentumOverscroll:   100,
		MinMomentumPush:         1.75,
		MinMomentumMultiplier:   0.25,
		BounceDurationMs:        500,
		BounceEasing:            utils.DefaultBounceEaseAlg,
		MaxScrollSpeed:          50,
		MinScrollSpeed:          0.2,
		ScrollSlowingDistance:   150,
		MaxMomentumSpeed:        35,
		MinMomentumSpeed:        0.5,
		MomentumDecayPerFrame:   0.2,
		PullToRefresh:           false,
		PullToRefreshOverscroll: 100,
		PullToRefreshMargin:     50,
	}
}

// LoadScrollConfig 加载滚动配置
//
// 文件中出现的字段覆盖默认值，未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/scroll.yaml"）
//
// 返回:
//   - *ScrollConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadScrollConfig(path string) (*ScrollConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scroll config: %w", err)
	}
	return ParseScrollConfig(data)
}

// ParseScrollConfig 从 YAML 数据解析配置（叠加在默认值之上）
func ParseScrollConfig(data []byte) (*ScrollConfig, error) {
	cfg := DefaultScrollConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scroll config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scroll config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - axis 可以解析
//   - 距离、速度、时长类参数为正数
//   - 阻尼系数下限在 [0, 1] 内
//   - 最小速度不大于最大速度
func (c *ScrollConfig) Validate() error {
	if _, err := types.ParseAxisSet(c.Axis); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAxis, err)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"maxTouchOverscroll", c.MaxTouchOverscroll},
		{"maxMomentumOverscroll", c.MaxMomentumOverscroll},
		{"bounceDurationMs", c.BounceDurationMs},
		{"maxScrollSpeed", c.MaxScrollSpeed},
		{"scrollSlowingDistance", c.ScrollSlowingDistance},
		{"maxMomentumSpeed", c.MaxMomentumSpeed},
		{"momentumDecayPerFrame", c.MomentumDecayPerFrame},
		{"pullToRefreshOverscroll", c.PullToRefreshOverscroll},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidValue, p.name, p.value)
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"minMomentumPush", c.MinMomentumPush},
		{"minScrollSpeed", c.MinScrollSpeed},
		{"minMomentumSpeed", c.MinMomentumSpeed},
		{"pullToRefreshMargin", c.PullToRefreshMargin},
	}
	for _, p := range nonNegatives {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidValue, p.name, p.value)
		}
	}

	if c.MinMomentumMultiplier < 0 || c.MinMomentumMultiplier > 1 {
		return fmt.Errorf("%w: minMomentumMultiplier must be in [0, 1], got %v", ErrInvalidValue, c.MinMomentumMultiplier)
	}
	if c.MinScrollSpeed > c.MaxScrollSpeed {
		return fmt.Errorf("%w: minScrollSpeed (%v) exceeds maxScrollSpeed (%v)", ErrInvalidValue, c.MinScrollSpeed, c.MaxScrollSpeed)
	}
	if c.MinMomentumSpeed > c.MaxMomentumSpeed {
		return fmt.Errorf("%w: minMomentumSpeed (%v) exceeds maxMomentumSpeed (%v)", ErrInvalidValue, c.MinMomentumSpeed, c.MaxMomentumSpeed)
	}
	if _, ok := utils.EasingByName(c.BounceEasing); !ok {
		return fmt.Errorf("%w: unknown bounceEasing %q", ErrInvalidValue, c.BounceEasing)
	}

	return nil
}

// AxisSet 解析后的轴集合；配置无效时返回空集合
func (c *ScrollConfig) AxisSet() types.AxisSet {
	s, _ := types.ParseAxisSet(c.Axis)
	return s
}

// BounceDuration 回弹时长
func (c *ScrollConfig) BounceDuration() time.Duration {
	return time.Duration(c.BounceDurationMs * float64(time.Millisecond))
}

// Clone 返回配置副本
func (c *ScrollConfig) Clone() *ScrollConfig {
	cp := *c
	return &cp
}
