// Package config はbbmodsツールの設定管理を行います
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const Version = "0.1.0"

//go:embed sample_config.toml
var sampleConfig []byte

// Config はアプリケーションの設定を保持します。
// ゲームルートは明示的な設定値としてここに持ち、各コンポーネントへ渡します。
type Config struct {
	GameRoot    string `toml:"game_root"`
	ProcessName string `toml:"process_name"`
	Paths       Paths  `toml:"paths"`

	// コマンドラインでのみ指定される項目
	DebugMode bool `toml:"-"`
}

// Paths はゲームルートからの相対パスを保持します
type Paths struct {
	CoreFile        string `toml:"core_file"`
	DisplayFile     string `toml:"display_file"`
	Single2File     string `toml:"single2_file"`
	ToolSingle2File string `toml:"tool_single2_file"`
	DeckDir         string `toml:"deck_dir"`
	AIDir           string `toml:"ai_dir"`
}

// Default は既定値の設定を返します
func Default() *Config {
	return &Config{
		GameRoot:    ".",
		ProcessName: "PDUWP.exe",
		Paths: Paths{
			CoreFile:        "Assets/Data/setup/stageset/stageset.dat",
			DisplayFile:     "Assets/Data/setup/stageset/stageset_en.dat",
			Single2File:     "Assets/Data/com/single2.csv",
			ToolSingle2File: "tool/single2.csv",
			DeckDir:         "Assets/Data/com/deck",
			AIDir:           "Assets/Data/com/ai",
		},
	}
}

// Load は設定ファイルを読み込みます。
// パスが空の場合は既定値を返します。未指定の項目は既定値で補完されます。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
	}
	if cfg.GameRoot == "" {
		cfg.GameRoot = "."
	}
	return cfg, nil
}

// WriteSample はコメント付きのサンプル設定ファイルを書き出します。
// 既にファイルが存在する場合はエラーになります。
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.WriteFile(path, sampleConfig, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteConfig, path, err)
	}
	return nil
}

func (c *Config) resolve(rel string) string {
	return filepath.Join(c.GameRoot, filepath.FromSlash(rel))
}

// CoreFilePath はコアのステージセットファイルのパスを返します
func (c *Config) CoreFilePath() string {
	return c.resolve(c.Paths.CoreFile)
}

// DisplayFilePath は表示用ステージセットファイルのパスを返します
func (c *Config) DisplayFilePath() string {
	return c.resolve(c.Paths.DisplayFile)
}

// Single2Path はsingle2.csvのパスを返します
func (c *Config) Single2Path() string {
	return c.resolve(c.Paths.Single2File)
}

// ToolSingle2Path は名前参照用の補助CSVのパスを返します
func (c *Config) ToolSingle2Path() string {
	return c.resolve(c.Paths.ToolSingle2File)
}

// DeckDir はデッキ定義ディレクトリのパスを返します
func (c *Config) DeckDir() string {
	return c.resolve(c.Paths.DeckDir)
}

// AIDir はAIスクリプトディレクトリのパスを返します
func (c *Config) AIDir() string {
	return c.resolve(c.Paths.AIDir)
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
