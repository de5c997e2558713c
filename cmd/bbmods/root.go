package main

import (
	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/config"
)

// commandContext はサブコマンド間で共有する設定とロガーを保持します
type commandContext struct {
	configFlag string
	rootFlag   string
	debugFlag  bool

	cfg    *config.Config
	logger *config.DebugLogger
}

// ensureConfig は設定を読み込みます（初回のみ）。
// --rootの指定は設定ファイルのgame_rootより優先されます。
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	if c.rootFlag != "" {
		cfg.GameRoot = c.rootFlag
	}
	cfg.DebugMode = c.debugFlag
	c.cfg = cfg
	c.logger = config.NewDebugLogger(cfg.DebugMode)
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "bbmods",
		Short:         "Phantom Dust向けのステージ・ミッション・スキル編集ツール",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "設定ファイルのパス")
	rootCmd.PersistentFlags().StringVar(&ctx.rootFlag, "root", "", "ゲームルートディレクトリ（設定より優先）")
	rootCmd.PersistentFlags().BoolVarP(&ctx.debugFlag, "debug", "d", false, "デバッグ出力を有効にする")

	rootCmd.AddCommand(newStagesetCommand(ctx))
	rootCmd.AddCommand(newMissionCommand(ctx))
	rootCmd.AddCommand(newMemoryCommand(ctx))
	rootCmd.AddCommand(newHexCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
