package internal

import (
	"cpay/entity"
	"cpay/services"
	"fmt"
	"go.uber.org/zap"
	"time"
)

// Logger writes structured records through zap and, when a database is set,
// stores every non-debug record in the payment log.
type Logger struct {
	category  string
	requestId string
	debug     bool
	database  services.Database
	zap       *zap.Logger
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	conf := zap.NewProductionConfig()
	if debug {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	base, err := conf.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return newLogger(category, debug, database, base)
}

func newLogger(category string, debug bool, database services.Database, base *zap.Logger) *Logger {
	return &Logger{
		category: category,
		debug:    debug,
		database: database,
		zap:      base.Named(category),
	}
}

// WithRequestId returns a logger that tags zap output and stored records with the request id.
func (l *Logger) WithRequestId(id string) services.LogHandler {
	if id == "" {
		return l
	}
	tagged := *l
	tagged.requestId = id
	tagged.zap = l.zap.With(zap.String("request_id", id))
	return &tagged
}

func (l *Logger) Debug(text string) {
	if !l.debug {
		return
	}
	l.zap.Debug(text)
}

func (l *Logger) Info(text string) {
	l.zap.Info(text)
	l.store("info", text)
}

func (l *Logger) Warn(text string) {
	l.zap.Warn(text)
	l.store("warn", text)
}

func (l *Logger) Error(text string, err error) {
	l.zap.Error(text, zap.Error(err))
	if err != nil {
		text = fmt.Sprintf("%s: %v", text, err)
	}
	l.store("error", text)
}

func (l *Logger) Sync() {
	_ = l.zap.Sync()
}

func (l *Logger) store(level, text string) {
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:      time.Now(),
		Level:     level,
		Category:  l.category,
		Text:      text,
		RequestId: l.requestId,
	}
	if err := l.database.WriteLogMessage(message); err != nil {
		l.zap.Warn("write log message", zap.Error(err))
	}
}
