package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "設定ファイルの生成と確認",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand(ctx))
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "サンプル設定ファイルを生成する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteSample(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "設定ファイルを生成しました: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "bbmods.toml", "出力先のパス")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "現在の設定と解決済みパスを表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "game_root:    %s\n", cfg.GameRoot)
			fmt.Fprintf(out, "process_name: %s\n", cfg.ProcessName)
			fmt.Fprintln(out, "解決済みパス:")
			fmt.Fprintf(out, "  core:         %s\n", cfg.CoreFilePath())
			fmt.Fprintf(out, "  display:      %s\n", cfg.DisplayFilePath())
			fmt.Fprintf(out, "  single2:      %s\n", cfg.Single2Path())
			fmt.Fprintf(out, "  tool_single2: %s\n", cfg.ToolSingle2Path())
			fmt.Fprintf(out, "  deck_dir:     %s\n", cfg.DeckDir())
			fmt.Fprintf(out, "  ai_dir:       %s\n", cfg.AIDir())
			return nil
		},
	}
	return cmd
}
