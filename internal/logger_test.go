package internal

import (
	"cpay/entity"
	"cpay/services"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

type memoryDatabase struct {
	messages []*entity.LogMessage
	err      error
}

func (m *memoryDatabase) WriteLogMessage(data services.Data) error {
	if message, ok := data.(*entity.LogMessage); ok {
		m.messages = append(m.messages, message)
	}
	return m.err
}

func TestLogger_StoresRecords(t *testing.T) {
	database := &memoryDatabase{}
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newLogger("payments", false, database, zap.New(core))

	logger.Debug("hidden")
	logger.Info("started")
	logger.Warn("careful")
	logger.Error("failed", errors.New("boom"))

	assert.Equal(t, 3, logs.Len(), "debug is off")
	require.Len(t, database.messages, 3)
	assert.Equal(t, "info", database.messages[0].Level)
	assert.Equal(t, "payments", database.messages[0].Category)
	assert.Equal(t, "failed: boom", database.messages[2].Text)
	assert.Equal(t, "log", database.messages[2].DataType())
}

func TestLogger_DebugEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newLogger("server", true, nil, zap.New(core))

	logger.Debug("visible")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "server", logs.All()[0].LoggerName)
}

func TestLogger_DatabaseFailureIsLogged(t *testing.T) {
	database := &memoryDatabase{err: errors.New("offline")}
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newLogger("server", false, database, zap.New(core))

	logger.Info("started")

	assert.Equal(t, 1, logs.FilterMessage("write log message").Len())
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("internal", true, nil)
	require.NotNil(t, logger)
	logger.Debug("debug")
	logger.Sync()
}

func TestLogger_WithRequestId(t *testing.T) {
	database := &memoryDatabase{}
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newLogger("server", false, database, zap.New(core))

	logger.WithRequestId("req-1").Warn("tagged")
	logger.WithRequestId("").Info("plain")
	logger.Info("untouched")

	require.Len(t, database.messages, 3)
	assert.Equal(t, "req-1", database.messages[0].RequestId)
	assert.Empty(t, database.messages[1].RequestId)
	assert.Empty(t, database.messages[2].RequestId)
	assert.Equal(t, "req-1", logs.All()[0].ContextMap()["request_id"])
	assert.NotContains(t, logs.All()[2].ContextMap(), "request_id")
}
