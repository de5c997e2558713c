package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/memory"
	"github.com/bbmods/go-phantom/pkg/hexcodec"
)

func newMemoryCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "実行中プロセスのスキルメモリの読み書き（Windowsのみ）",
	}
	cmd.AddCommand(newMemoryFindCommand(ctx))
	cmd.AddCommand(newMemoryReadSkillCommand(ctx))
	cmd.AddCommand(newMemoryWriteSkillCommand(ctx))
	return cmd
}

// attachBridge は--pid指定または設定のプロセス名からBridgeをアタッチします
func attachBridge(ctx *commandContext, pid int) (*memory.Bridge, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if pid == 0 {
		pid, err = memory.FindProcessID(cfg.ProcessName)
		if err != nil {
			return nil, err
		}
	}
	bridge := memory.NewBridge()
	if err := bridge.Attach(pid); err != nil {
		return nil, err
	}
	return bridge, nil
}

func newMemoryFindCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "設定のプロセス名からゲームプロセスを探す",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			pid, err := memory.FindProcessID(cfg.ProcessName)
			if err != nil {
				return err
			}
			bridge := memory.NewBridge()
			if err := bridge.Attach(pid); err != nil {
				return err
			}
			defer bridge.Detach()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "プロセス: %s (PID %d)\n", cfg.ProcessName, pid)
			if base, ok := bridge.BaseAddress(); ok {
				fmt.Fprintf(out, "ベースアドレス: 0x%016X\n", base)
			}
			if path := bridge.ModulePath(); path != "" {
				fmt.Fprintf(out, "モジュール: %s\n", path)
			}
			return nil
		},
	}
	return cmd
}

func newMemoryReadSkillCommand(ctx *commandContext) *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "read-skill <hex-id>",
		Short: "スキルブロックを読み取って16進ダンプを表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := memory.SkillIndexFromHex(args[0])
			if err != nil {
				return err
			}
			bridge, err := attachBridge(ctx, pid)
			if err != nil {
				return err
			}
			defer bridge.Detach()

			table := memory.NewSkillTable(bridge, ctx.logger)
			data, err := table.ReadBlock(index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "スキル %s (%dバイト)\n", memory.BlockKey(index), len(data))
			fmt.Fprintln(out, hexcodec.FromBytes(data))
			return nil
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "対象プロセスのPID（省略時はプロセス名で検索）")
	return cmd
}

func newMemoryWriteSkillCommand(ctx *commandContext) *cobra.Command {
	var (
		pid      int
		hexText  string
		hexFile  string
		showDiff bool
	)
	cmd := &cobra.Command{
		Use:   "write-skill <hex-id>",
		Short: "スキルブロックを16進テキストの内容で書き換える",
		Long: "スキルブロックを16進テキストの内容で書き換えます。\n" +
			"データは--hexまたは--fileで与え、ブロック長（144バイト）と\n" +
			"完全に一致している必要があります。",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := memory.SkillIndexFromHex(args[0])
			if err != nil {
				return err
			}

			text := hexText
			if hexFile != "" {
				payload, err := os.ReadFile(hexFile)
				if err != nil {
					return fmt.Errorf("16進テキストを読み込めません: %w", err)
				}
				text = string(payload)
			}
			if text == "" {
				return fmt.Errorf("--hexまたは--fileでデータを指定してください")
			}

			count, invalid := hexcodec.TokenStats(text)
			if len(invalid) > 0 {
				return fmt.Errorf("不正なトークンがあります: %s", hexcodec.DescribeInvalid(invalid))
			}
			if count != memory.SkillBlockSize {
				return fmt.Errorf("データ長が一致しません: %dバイト必要ですが%dバイトでした", memory.SkillBlockSize, count)
			}
			data, err := hexcodec.ToBytes(text)
			if err != nil {
				return err
			}

			bridge, err := attachBridge(ctx, pid)
			if err != nil {
				return err
			}
			defer bridge.Detach()

			table := memory.NewSkillTable(bridge, ctx.logger)
			if showDiff {
				if before, err := table.ReadBlock(index); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "変更前:\n%s\n", hexcodec.FromBytes(before))
				}
			}
			if err := table.WriteBlock(index, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "スキル %s を書き換えました\n", memory.BlockKey(index))
			return nil
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "対象プロセスのPID（省略時はプロセス名で検索）")
	cmd.Flags().StringVar(&hexText, "hex", "", "書き込む16進テキスト")
	cmd.Flags().StringVar(&hexFile, "file", "", "書き込む16進テキストのファイル")
	cmd.Flags().BoolVar(&showDiff, "show-before", false, "書き込み前のブロック内容を表示する")
	return cmd
}
