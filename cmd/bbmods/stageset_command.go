package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/models"
	"github.com/bbmods/go-phantom/internal/bbmods/stageset"
)

// stagesetFlags はステージセット系サブコマンド共通のパス指定です
type stagesetFlags struct {
	corePath    string
	displayPath string
}

func (f *stagesetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.corePath, "core", "", "コアファイルのパス（設定より優先）")
	cmd.Flags().StringVar(&f.displayPath, "display", "", "表示ファイルのパス（設定より優先）")
}

func (f *stagesetFlags) loadModel(ctx *commandContext) (*stageset.Model, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	corePath := f.corePath
	if corePath == "" {
		corePath = cfg.CoreFilePath()
	}
	displayPath := f.displayPath
	if displayPath == "" {
		displayPath = cfg.DisplayFilePath()
	}
	return stageset.LoadModel(corePath, displayPath)
}

func newStagesetCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stageset",
		Short: "ステージセットファイルの表示と編集",
	}
	cmd.AddCommand(newStagesetListCommand(ctx))
	cmd.AddCommand(newStagesetShowCommand(ctx))
	cmd.AddCommand(newStagesetEditCommand(ctx))
	return cmd
}

func newStagesetListCommand(ctx *commandContext) *cobra.Command {
	flags := &stagesetFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "ステージ一覧を表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}

			headers := []string{"#", "Category", "StageID", "Name", "Label", "Internal"}
			rows := make([][]string, 0, len(model.Entries))
			for _, entry := range model.Entries {
				rows = append(rows, []string{
					fmt.Sprintf("%03d", entry.Index),
					models.CategoryLabel(entry.Category),
					strconv.Itoa(int(entry.StageID)),
					entry.MapName,
					entry.MapLabel,
					entry.InternalName,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight, alignLeft, alignRight}))

			fmt.Fprintf(out, "全%d件 / 文字コード: %s\n", len(model.Entries), model.Core.Encoding.Name)
			if model.Core.DecodeDegraded {
				fmt.Fprintln(out, "警告: 文字コードを判定できなかったため、一部の文字列が置換されています")
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newStagesetShowCommand(ctx *commandContext) *cobra.Command {
	flags := &stagesetFlags{}
	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "ステージ1件の詳細を表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("インデックスが不正です: %q", args[0])
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(model.Entries) {
				return fmt.Errorf("インデックスが範囲外です: %d（0〜%d）", index, len(model.Entries)-1)
			}

			entry := model.Entries[index]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ステージ %03d\n", entry.Index)
			fmt.Fprintf(out, "  category:       %d (%s)\n", entry.Category, models.CategoryLabel(entry.Category))
			fmt.Fprintf(out, "  stage_id:       %d\n", entry.StageID)
			fmt.Fprintf(out, "  unk_flag:       0x%08X\n", entry.UnkFlag)
			fmt.Fprintf(out, "  map_name:       %s\n", entry.MapName)
			fmt.Fprintf(out, "  map_label:      %s\n", entry.MapLabel)
			fmt.Fprintf(out, "  internal_name:  %s\n", entry.InternalName)
			if model.DisplayPath != "" {
				fmt.Fprintf(out, "  core文字列:\n")
				fmt.Fprintf(out, "    map_name:      %s\n", entry.CoreMapName)
				fmt.Fprintf(out, "    map_label:     %s\n", entry.CoreMapLabel)
				fmt.Fprintf(out, "    internal_name: %s\n", entry.CoreInternalName)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newStagesetEditCommand(ctx *commandContext) *cobra.Command {
	flags := &stagesetFlags{}
	var (
		mapName              string
		mapLabel             string
		internalName         string
		category             uint16
		stageID              uint16
		overwriteCoreStrings bool
	)
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "ステージの内容を書き換えて保存する",
		Long: "指定したステージの文字列やカテゴリを書き換えて保存します。\n" +
			"指定しなかった項目は変更されません。初回保存時は対象ファイルの\n" +
			"バックアップ（.bak）を作成します。",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("インデックスが不正です: %q", args[0])
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(model.Entries) {
				return fmt.Errorf("インデックスが範囲外です: %d（0〜%d）", index, len(model.Entries)-1)
			}

			entry := model.Entries[index]
			changed := false
			if cmd.Flags().Changed("name") {
				entry.MapName = mapName
				changed = true
			}
			if cmd.Flags().Changed("label") {
				entry.MapLabel = mapLabel
				changed = true
			}
			if cmd.Flags().Changed("internal") {
				entry.InternalName = internalName
				changed = true
			}
			if cmd.Flags().Changed("category") {
				entry.Category = category
				changed = true
			}
			if cmd.Flags().Changed("stage-id") {
				entry.StageID = stageID
				changed = true
			}
			if !changed {
				return fmt.Errorf("変更する項目が指定されていません")
			}

			if err := model.Save(overwriteCoreStrings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ステージ %03d を保存しました\n", index)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mapName, "name", "", "map_nameを設定する")
	cmd.Flags().StringVar(&mapLabel, "label", "", "map_labelを設定する")
	cmd.Flags().StringVar(&internalName, "internal", "", "internal_nameを設定する")
	cmd.Flags().Uint16Var(&category, "category", 0, "カテゴリ値を設定する")
	cmd.Flags().Uint16Var(&stageID, "stage-id", 0, "stage_idを設定する")
	cmd.Flags().BoolVar(&overwriteCoreStrings, "overwrite-core-strings", false, "コアファイルの文字列ヒープも再構築する")
	return cmd
}
