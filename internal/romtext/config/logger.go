package config

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger はログ出力を管理します。
// Printf はデバッグモードが有効な場合のみ出力されます。
type Logger struct {
	log *logrus.Logger
}

// NewLogger は新しいLoggerを作成します
func NewLogger(debug bool, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &Logger{log: l}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (l *Logger) Printf(format string, a ...any) {
	l.log.Debugf(trimNewline(format), a...)
}

// Infof は進捗などの情報を表示します
func (l *Logger) Infof(format string, a ...any) {
	l.log.Infof(trimNewline(format), a...)
}

// Warnf は警告を表示します
func (l *Logger) Warnf(format string, a ...any) {
	l.log.Warnf(trimNewline(format), a...)
}

// Errorf はエラーを表示します
func (l *Logger) Errorf(format string, a ...any) {
	l.log.Errorf(trimNewline(format), a...)
}

func trimNewline(format string) string {
	return strings.TrimSuffix(format, "\n")
}
