package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger writes gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(ctx context.Context, s string, args ...any) {
	l.Logger.Info().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Warn(ctx context.Context, s string, args ...any) {
	l.Logger.Warn().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Error(ctx context.Context, s string, args ...any) {
	l.Logger.Error().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	event := l.Logger.Debug()

	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.Ctx(ctx).
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("[GORM] query")
}
