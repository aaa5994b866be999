package game

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-logr/logr"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/logging"
)

// ErrInvalidProfileName 配置档名称为空或包含非法字符
var ErrInvalidProfileName = errors.New("invalid profile name")

// 存储路径常量
const (
	profileObject = "scroll_profiles"

	// DefaultProfile 未指定名称时使用的配置档
	DefaultProfile = "default"
)

// 名称直接用作存储属性名，只允许文件名安全的字符
var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ProfileManager 滚动配置档管理器
// 负责把调好的 ScrollConfig 按名称持久化到 gdata，下次启动时恢复
type ProfileManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，只返回默认配置）
	logger       logr.Logger
}

// NewProfileManager 创建配置档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//   - logger: 日志器
func NewProfileManager(gdataManager *gdata.Manager, logger logr.Logger) *ProfileManager {
	return &ProfileManager{
		gdataManager: gdataManager,
		logger:       logger.WithName("profiles"),
	}
}

// Exists 配置档是否已保存
func (pm *ProfileManager) Exists(name string) bool {
	if pm.gdataManager == nil || !profileNamePattern.MatchString(name) {
		return false
	}
	return pm.gdataManager.ObjectPropExists(profileObject, name)
}

// Load 加载配置档
//
// 降级模式或配置档不存在时返回默认配置。
// 已保存的配置档叠加在默认值之上解析，并经过 Validate 校验。
//
// 返回：
//   - *config.ScrollConfig: 加载的配置
//   - error: 名称非法、读取失败或内容无效
func (pm *ProfileManager) Load(name string) (*config.ScrollConfig, error) {
	if !profileNamePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}

	if pm.gdataManager == nil || !pm.gdataManager.ObjectPropExists(profileObject, name) {
		pm.logger.V(logging.VERBOSE).Info("[ProfileManager] profile not found, using defaults", "profile", name)
		return config.DefaultScrollConfig(), nil
	}

	data, err := pm.gdataManager.LoadObjectProp(profileObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}

	cfg, err := config.ParseScrollConfig(data)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	pm.logger.V(logging.VERBOSE).Info("[ProfileManager] profile loaded", "profile", name)
	return cfg, nil
}

// Save 保存配置档
//
// 降级模式下不报错也不保存。
//
// 返回：
//   - error: 名称非法、配置无效、序列化或写入失败
func (pm *ProfileManager) Save(name string, cfg *config.ScrollConfig) error {
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save profile %q: %w", name, err)
	}

	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal profile %q: %w", name, err)
	}

	if err := pm.gdataManager.SaveObjectProp(profileObject, name, data); err != nil {
		return fmt.Errorf("failed to save profile %q: %w", name, err)
	}

	pm.logger.V(logging.VERBOSE).Info("[ProfileManager] profile saved", "profile", name)
	return nil
}
