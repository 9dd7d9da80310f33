// 指示: miu200521358
// Package logging はslogベースの共通ロガーを提供する。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger は名前付きロガーを表す。
type Logger struct {
	s *slog.Logger
}

var (
	global   *Logger
	levelVar slog.LevelVar
	initOnce sync.Once
)

// Init は出力先を指定してグローバルロガーを初期化する。
func Init(w io.Writer) {
	levelVar.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar})
	global = &Logger{s: slog.New(handler)}
}

// Get はグローバルロガーを返す。未初期化の場合は標準エラーへ初期化する。
func Get() *Logger {
	initOnce.Do(func() {
		if global == nil {
			Init(os.Stderr)
		}
	})
	return global
}

// Named は名前付きロガーを生成する。
func Named(name string) *Logger {
	return &Logger{s: Get().s.WithGroup(name)}
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(msg string, args ...any) {
	l.s.Debug(msg, args...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(msg string, args ...any) {
	l.s.Info(msg, args...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(msg string, args ...any) {
	l.s.Warn(msg, args...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(msg string, args ...any) {
	l.s.Error(msg, args...)
}

// SetLevelString はログレベル文字列を解釈して反映する。
func SetLevelString(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "", "info":
		levelVar.Set(slog.LevelInfo)
	case "warn", "warning":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		return fmt.Errorf("未対応のログレベルです: %s", level)
	}
	return nil
}
