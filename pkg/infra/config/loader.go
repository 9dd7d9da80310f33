// 指示: miu200521358
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load は既定値、設定ファイル、環境変数を重ねてConfigを構築する。
// 優先順位(低 -> 高):
//  1. 既定値 (New())
//  2. MU_HANDRIG_CONFIG が指すYAMLファイル
//  3. 環境変数 (接頭辞 MU_HANDRIG_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MU_HANDRIG_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// MU_HANDRIG_SMOOTHING -> smoothing のように小文字のフラットキーへ写像する。
	// アンダースコアは構造体のkoanfタグに合わせてそのまま残す。
	envProvider := env.Provider("MU_HANDRIG_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mu_handrig_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
