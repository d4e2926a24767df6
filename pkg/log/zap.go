package log

import "go.uber.org/zap"

// zapAdapter bridges a *zap.Logger into the Logger interface so it
// can be installed with SetDebugLogger/SetInfoLogger/etc, the same
// way internal/zap4echo bridges *zap.Logger into echo's middleware.
type zapAdapter struct {
	z     *zap.SugaredLogger
	level zapcore_level
}

type zapcore_level int

const (
	levelDebug zapcore_level = iota
	levelInfo
	levelWarn
)

// NewZap returns a Logger backed by z, logging at the given level.
// Typical wiring:
//
//	z, _ := zap.NewProduction()
//	log.SetDebugLogger(log.NewZap(z, log.ZapDebug))
//	log.SetInfoLogger(log.NewZap(z, log.ZapWarn))
func NewZap(z *zap.Logger, level ZapLevel) Logger {
	return &zapAdapter{z: z.Sugar(), level: zapcore_level(level)}
}

// ZapLevel selects which zap severity a bridged Logger emits at.
type ZapLevel int

const (
	ZapDebug ZapLevel = ZapLevel(levelDebug)
	ZapInfo  ZapLevel = ZapLevel(levelInfo)
	ZapWarn  ZapLevel = ZapLevel(levelWarn)
)

func (a *zapAdapter) Printf(format string, args ...interface{}) {
	switch a.level {
	case levelWarn:
		a.z.Warnf(format, args...)
	case levelInfo:
		a.z.Infof(format, args...)
	default:
		a.z.Debugf(format, args...)
	}
}

func (a *zapAdapter) Println(args ...interface{}) {
	switch a.level {
	case levelWarn:
		a.z.Warn(args...)
	case levelInfo:
		a.z.Info(args...)
	default:
		a.z.Debug(args...)
	}
}
