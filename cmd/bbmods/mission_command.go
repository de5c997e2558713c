package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/models"
	"github.com/bbmods/go-phantom/internal/bbmods/roster"
)

// missionFlags はミッション系サブコマンド共通のパス指定です
type missionFlags struct {
	single2Path string
	toolPath    string
}

func (f *missionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.single2Path, "single2", "", "single2.csvのパス（設定より優先）")
	cmd.Flags().StringVar(&f.toolPath, "tool", "", "ツール用CSVのパス（設定より優先）")
}

func (f *missionFlags) resolve(ctx *commandContext) (string, string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return "", "", err
	}
	single2 := f.single2Path
	if single2 == "" {
		single2 = cfg.Single2Path()
	}
	tool := f.toolPath
	if tool == "" {
		tool = cfg.ToolSingle2Path()
	}
	return single2, tool, nil
}

func (f *missionFlags) loadModel(ctx *commandContext) (*roster.Model, error) {
	single2, tool, err := f.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return roster.LoadModel(single2, tool)
}

func newMissionCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "single2.csvのミッション編成の表示と編集",
	}
	cmd.AddCommand(newMissionListCommand(ctx))
	cmd.AddCommand(newMissionShowCommand(ctx))
	cmd.AddCommand(newMissionCheckCommand(ctx))
	cmd.AddCommand(newMissionAddCommand(ctx))
	cmd.AddCommand(newMissionAddPresetCommand(ctx))
	cmd.AddCommand(newMissionRemoveCommand(ctx))
	cmd.AddCommand(newMissionSeedCommand(ctx))
	return cmd
}

func newMissionListCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "ミッション一覧を表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, group := range model.Groups {
				fmt.Fprintln(out, group.SummaryLabel())
			}
			fmt.Fprintf(out, "全%dミッション / %dエントリ\n", len(model.Groups), len(model.Entries))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newMissionShowCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "show <mission>",
		Short: "ミッション1件の編成を表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			missionIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ミッション番号が不正です: %q", args[0])
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			if missionIndex < 0 || missionIndex >= len(model.Groups) {
				return fmt.Errorf("ミッション番号が範囲外です: %d（0〜%d）", missionIndex, len(model.Groups)-1)
			}

			group := model.Groups[missionIndex]
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, group.SummaryLabel())

			headers := []string{"#", "actor_type", "alias", "deck", "ai_script", "character", "hp"}
			rows := make([][]string, 0, len(group.Entries))
			for i, entry := range group.Entries {
				character := models.CharacterDisplayValue(entry.CharacterID)
				if name, ok := model.CharacterMap[entry.CharacterID]; ok {
					character = models.CharacterDisplayLabel(entry.CharacterID, name)
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					entry.ActorType,
					entry.Alias,
					entry.Deck,
					entry.AIScript,
					character,
					strconv.Itoa(entry.HP),
				})
			}
			fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight}))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newMissionCheckCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "編成ルール違反を一覧する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			violations := model.RuleViolations()
			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintln(out, "ルール違反はありません")
				return nil
			}
			for _, violation := range violations {
				fmt.Fprintln(out, violation)
			}
			return fmt.Errorf("%d件のルール違反があります", len(violations))
		},
	}
	flags.register(cmd)
	return cmd
}

func newMissionAddCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	var (
		actorType string
		force     bool
	)
	cmd := &cobra.Command{
		Use:   "add <mission>",
		Short: "ミッションにエントリを1件追加して保存する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			missionIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ミッション番号が不正です: %q", args[0])
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			group, err := model.AddEntry(missionIndex, actorType)
			if err != nil {
				return err
			}
			if err := model.Save(force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ミッション %03d にエントリを追加しました（全%d件）\n", group.Index, group.EntryCount())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&actorType, "actor-type", "", "追加するエントリのアクター種別（既定: ENEMY）")
	cmd.Flags().BoolVar(&force, "force", false, "ルール違反があっても保存する")
	return cmd
}

func newMissionAddPresetCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	var force bool
	cmd := &cobra.Command{
		Use:   "add-preset <label>",
		Short: "プリセット編成のミッションを末尾に追加して保存する",
		Long: "プリセット編成のミッションを末尾に追加して保存します。\n" +
			"利用できるラベル: " + strings.Join(models.PresetLabels(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, ok := models.PresetByLabel(args[0])
			if !ok {
				return fmt.Errorf("プリセット %q は存在しません（利用可能: %s）", args[0], strings.Join(models.PresetLabels(), ", "))
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			group, err := model.AddPresetGroup(preset)
			if err != nil {
				return err
			}
			if err := model.Save(force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ミッション %03d として %s を追加しました\n", group.Index, preset.Label)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "ルール違反があっても保存する")
	return cmd
}

func newMissionRemoveCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	var force bool
	cmd := &cobra.Command{
		Use:   "remove <mission> <entry>",
		Short: "ミッションからエントリを1件削除して保存する",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			missionIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ミッション番号が不正です: %q", args[0])
			}
			entryIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("エントリ番号が不正です: %q", args[1])
			}
			model, err := flags.loadModel(ctx)
			if err != nil {
				return err
			}
			group, err := model.RemoveEntry(missionIndex, entryIndex)
			if err != nil {
				return err
			}
			if err := model.Save(force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ミッション %03d のエントリ %03d を削除しました（残り%d件）\n", group.Index, entryIndex, group.EntryCount())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "ルール違反があっても保存する")
	return cmd
}

func newMissionSeedCommand(ctx *commandContext) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "ツール用CSVが無ければ初期内容で作成する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tool, err := flags.resolve(ctx)
			if err != nil {
				return err
			}
			if err := roster.EnsureSeed(tool); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ツール用CSV: %s\n", tool)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
