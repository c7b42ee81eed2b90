package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as a warning.
const slowQuery = 200 * time.Millisecond

// logger writes the log output of gorm to zerolog.
type logger struct {
	log   zerolog.Logger
	level gorm_logger.LogLevel
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		log:   l.With().Str("component", "database").Logger(),
		level: gorm_logger.Info,
	}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.log.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.log.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.log.Error().Msgf(s, args...)
	}
}

// Trace logs a finished query. Failed queries are errors, slow ones
// warnings and everything else is logged at debug level.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQuery:
		event = l.log.Warn().Dur("threshold", slowQuery)
	default:
		event = l.log.Debug()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}
