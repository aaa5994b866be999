// Package logging 构造引擎使用的 logr 日志器
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 日志详细级别，用于 logger.V(level)
const (
	DEFAULT = 0
	VERBOSE = 1
	DEBUG   = 2
	TRACE   = 3
)

// NewLogger 创建 zap 支撑的 logr 日志器
//
// 参数：
//   - development: 是否使用开发模式（可读的控制台输出）
//   - verbosity: 允许输出的最大详细级别（DEFAULT..TRACE）
func NewLogger(development bool, verbosity int) (logr.Logger, error) {
	var zc zap.Config
	if development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	// logr 的 V(n) 对应 zap 的 -n 级别
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-1 * verbosity))

	z, err := zc.Build(zap.AddCaller())
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(z), nil
}
