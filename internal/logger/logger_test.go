package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_ValidLevels(t *testing.T) {
	// Save original Log and restore after test
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		for _, format := range []string{"json", "console", ""} {
			t.Run(lvl+"/"+format, func(t *testing.T) {
				err := Initialize(lvl, format)
				assert.NoError(t, err, "expected no error for level %s", lvl)
				assert.NotNil(t, Log, "Log should be initialized")
				assert.IsType(t, &zap.SugaredLogger{}, Log, "Log should be a SugaredLogger")

				assert.NotPanics(t, func() {
					Log.Infow("test log", "level", lvl)
				})
			})
		}
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", "json")
	assert.Error(t, err, "expected error for invalid log level")
}

func TestInitialize_InvalidFormat(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("info", "xml")
	assert.Error(t, err)
	assert.Same(t, originalLog, Log, "Log must be left untouched")
}

func TestForPlayer(t *testing.T) {
	// By default, Log is zap.NewNop().Sugar()
	l := ForPlayer(context.Background(), "player-1")
	assert.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Infow("nop logger test")
	})
}

func TestForPlayer_CarriesRequestID(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core).Sugar()

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))

	ForPlayer(ctx, "player-1").Infow("with request")
	ForPlayer(context.Background(), "player-1").Infow("without request")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "player-1", entries[0].ContextMap()["player_id"])
		assert.NotContains(t, entries[1].ContextMap(), "request_id")
	}
}
