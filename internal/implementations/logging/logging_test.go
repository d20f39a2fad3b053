package logging

import (
	"context"
	"errors"
	"petminder/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesBecomeFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info(context.Background(), "Pet successfully created.", logging.Entry("petID", "rex"))
	logging.Error(context.Background(), log, errors.New("boom"), logging.Entry("input", 42))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "Pet successfully created.", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "rex", entries[0].ContextMap()["petID"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(42), entries[1].ContextMap()["input"])
	assert.Contains(t, entries[1].ContextMap(), "err")
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))

	log.Debug(context.Background(), "hidden")
	log.Warning(context.Background(), "Rate limit exceeded.")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}
