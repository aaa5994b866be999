package game

import (
	"github.com/go-logr/logr"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName 配置档存储使用的应用名
const DefaultAppName = "scrollkit"

// OpenStorage 打开 gdata 跨平台存储
//
// 打开失败不是致命错误：记录日志后返回 nil，调用方以降级模式运行
// （NewProfileManager 接受 nil）。
func OpenStorage(appName string, logger logr.Logger) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Error(err, "[Storage] gdata unavailable, profiles will not persist", "app", appName)
		return nil
	}
	return m
}
