package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"trace", TRACE, false},
		{"DEBUG", DEBUG, false},
		{"", INFO, false},
		{" info ", INFO, false},
		{"warning", WARN, false},
		{"Error", ERROR, false},
		{"loud", INFO, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Уровень %q должен быть отклонён", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriterLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("world", &buf, WARN)

	l.Debug("скрыто %d", 1)
	l.Info("тоже скрыто")
	l.Warn("колонка %d вне карты", 7)
	l.Error("ошибка")

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[WARN] [world] колонка 7 вне карты")
	assert.Contains(t, out, "[ERROR] [world] ошибка")
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("nothing")
		assert.NoError(t, l.Close())
	})
}

func TestDefaultLogger_UninitialisedIsSilent(t *testing.T) {
	SetDefaultLogger(nil)
	assert.NotPanics(t, func() {
		Info("ничего не пишется")
		Error("и это тоже")
	})
}

func TestNewLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLogger("sampler", dir, ERROR)
	require.NoError(t, err)
	l.Debug("в файл пишется всё")
	require.NoError(t, l.Close())

	files, err := filepath.Glob(filepath.Join(dir, "sampler_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [sampler] в файл пишется всё")
}

func TestLoggerManager_UnconfiguredReturnsQuietLogger(t *testing.T) {
	lm := &LoggerManager{loggers: make(map[string]*Logger), consoleLevel: INFO}

	l, err := lm.GetLogger("world")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Empty(t, lm.ListComponents(), "Неконфигурированный менеджер не должен кешировать логгеры")

	other, err := lm.GetLogger("sampler")
	require.NoError(t, err)
	assert.Same(t, l, other, "До настройки все компоненты получают один немой логгер")

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = lm.GetLogger("world")
	})
	assert.Zero(t, allocs)
}

func TestLoggerManager_ConfiguredCachesLoggers(t *testing.T) {
	lm := &LoggerManager{loggers: make(map[string]*Logger), consoleLevel: INFO}
	lm.Configure("", ERROR)

	a, err := lm.GetLogger("api")
	require.NoError(t, err)
	b, err := lm.GetLogger("api")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, []string{"api"}, lm.ListComponents())

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
