// 指示: miu200521358
// Package config は実行時設定の定義と読み込みを提供する。
package config

import (
	"fmt"

	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
	"github.com/miu200521358/mu_handrig/pkg/usecase/hinteractor"
)

// Config はプロセス全体の実行時設定を表す。
type Config struct {
	// LogLevel はログ詳細度を表す: debug, info, warn, error。
	LogLevel string `koanf:"log_level"`

	// Smoothing は制御値平滑化係数を表す。(0, 1] の範囲で、1.0は平滑化なし。
	Smoothing float64 `koanf:"smoothing"`

	// Fingers は指ごとの較正上書きを表す。キーは指名(thumb, index, ...)。
	Fingers map[string]FingerOverride `koanf:"fingers"`
}

// FingerOverride は指単位の較正上書き項目を表す。未指定項目は既定値を維持する。
type FingerOverride struct {
	// SplayDegree は外転(扇)角の上書き値(度)。
	SplayDegree *float64 `koanf:"splay_degree"`

	// AbductionDegree は内外転係数の上書き値(度)。
	AbductionDegree *float64 `koanf:"abduction_degree"`

	// OppositionGain は親指対立ゲインの上書き値。
	OppositionGain *float64 `koanf:"opposition_gain"`
}

// New は既定値入りのConfigを生成する。
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Smoothing: hinteractor.DefaultCalibration().Smoothing,
		Fingers:   map[string]FingerOverride{},
	}
}

// Validate は設定値の整合性を検証する。
func (c *Config) Validate() error {
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("smoothing は (0, 1] の範囲で指定してください: %f", c.Smoothing)
	}
	for name := range c.Fingers {
		if !isKnownFingerName(name) {
			return fmt.Errorf("未知の指名です: %s", name)
		}
	}
	return nil
}

// ApplyTo は設定値を較正定数表へ反映する。
func (c *Config) ApplyTo(calibration *hinteractor.Calibration) {
	if calibration == nil {
		return
	}
	calibration.Smoothing = c.Smoothing

	for name, override := range c.Fingers {
		finger := model.FingerName(name)
		spec, exists := calibration.Fingers[finger]
		if !exists {
			continue
		}
		if override.SplayDegree != nil {
			spec.SplayAngle = mmath.DegToRad(*override.SplayDegree)
		}
		if override.AbductionDegree != nil {
			spec.AbductionCoeff = mmath.DegToRad(*override.AbductionDegree)
		}
		if override.OppositionGain != nil {
			spec.OppositionGain = *override.OppositionGain
		}
		calibration.Fingers[finger] = spec
	}
}

// isKnownFingerName は指名が定義済みか判定する。
func isKnownFingerName(name string) bool {
	for _, finger := range model.FingerNames() {
		if finger.String() == name {
			return true
		}
	}
	return false
}
