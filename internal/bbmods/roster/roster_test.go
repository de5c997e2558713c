package roster

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbmods/go-phantom/internal/bbmods/fileutil"
	"github.com/bbmods/go-phantom/internal/bbmods/models"
)

func writeCSV(t *testing.T, dir, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(rows, "\r\n") + "\r\n"
	require.NoError(t, fileutil.WriteFileWithBOM(path, []byte(content)))
	return path
}

func header() string {
	return strings.Join(models.Single2Header, ",")
}

func TestLoadModelGrouping(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
		"ENEMY,-1,Guard,DECK001,ai_guard,01,0,20,0,0",
		"PLAYER,-1,Hero2,,,00,0,20,0,0",
		"ENEMY,-1,GuardA,DECK002,ai_guard,02,0,20,0,0",
		"BOSS00,-1,Boss,DECK003,ai_boss,03,0,50,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	// PLAYER行を境界に2ミッションへ分割される
	require.Len(t, model.Groups, 2)
	assert.Equal(t, 2, model.Groups[0].EntryCount())
	assert.Equal(t, 3, model.Groups[1].EntryCount())
	assert.Equal(t, "Hero", model.Groups[0].MissionName())
	assert.Equal(t, "Hero2", model.Groups[1].MissionName())
}

func TestLoadModelNoPlayerRows(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"ENEMY,-1,GuardA,DECK001,,01,0,20,0,0",
		"ENEMY,-1,GuardB,DECK002,,02,0,20,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	// PLAYER行がなければ全行が1ミッションになる
	require.Len(t, model.Groups, 1)
	assert.Equal(t, 2, model.Groups[0].EntryCount())
}

func TestLoadModelFieldDefaults(t *testing.T) {
	dir := t.TempDir()
	// 列が欠けた行と空欄の行
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER",
		"ENEMY,,Guard,DECK001,,5,,,,",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)
	require.Len(t, model.Entries, 2)

	player := model.Entries[0]
	assert.Equal(t, -1, player.SpawnSlot)
	assert.Equal(t, 20, player.HP)
	assert.Equal(t, 0, player.SpawnIndex)
	assert.Equal(t, "00", player.CharacterID)

	guard := model.Entries[1]
	assert.Equal(t, -1, guard.SpawnSlot)
	assert.Equal(t, 20, guard.HP)
	// character_idは2桁大文字16進の正規形になる
	assert.Equal(t, "05", guard.CharacterID)
}

func TestRuleViolations(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
		"ENEMY,-1,G1,DECK001,,01,0,20,0,0",
		"ENEMY,-1,G2,DECK002,,02,0,20,0,0",
		"ENEMY,-1,G3,DECK003,,03,0,20,0,0",
		"ENEMY,-1,NoDeck,,,04,0,20,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	violations := model.RuleViolations()
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "exceeds 4 characters (5)")
	assert.Contains(t, violations[1], "(NoDeck) is missing a deck")

	// 手動で設定した範囲外のキャラクターIDも違反になる
	model.Entries[1].CharacterID = "99"
	violations = model.RuleViolations()
	require.Len(t, violations, 3)
	assert.Contains(t, violations[1], "invalid character ID '99'")
}

func TestRuleViolationsPlayerDeckExempt(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
		"ENEMY,-1,Guard,DECK001,,01,0,20,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	// PLAYER行はデッキ不要
	assert.Empty(t, model.RuleViolations())
}

func TestSaveBlockedByViolations(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
		"ENEMY,-1,NoDeck,,,01,0,20,0,0",
	})
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	// 違反がある場合は保存されない
	err = model.Save(false)
	require.ErrorIs(t, err, ErrRuleViolations)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after)

	// allowViolationsを指定すれば保存できる
	require.NoError(t, model.Save(true))
}

func TestSaveReindexAndBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
		"ENEMY,-1,Guard,DECK001,,01,0,20,0,0",
	})
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	model, err := LoadModel(path, "")
	require.NoError(t, err)
	_, err = model.AddEntry(0, "ENEMY")
	require.NoError(t, err)
	require.NoError(t, model.Save(false))

	// エントリ連番が振り直されている
	for idx, entry := range model.Entries {
		assert.Equal(t, idx, entry.Index)
	}

	// 初回保存時のバックアップは読み込み時点の内容
	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	// BOM付きCRLFで書き出される
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))
	assert.Contains(t, string(data), "\r\n")

	// 保存後はディスクの内容と一致する
	reloaded, err := LoadModel(path, "")
	require.NoError(t, err)
	assert.Len(t, reloaded.Entries, len(model.Entries))
}

func TestCharacterMapFirstWins(t *testing.T) {
	dir := t.TempDir()
	// "00"はプリセット（NANASHI）が優先され、行の別名では上書きされない
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Custom,,,00,0,20,0,0",
		"ENEMY,-1,Stranger,DECK001,,0x20,0,20,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	assert.Equal(t, "NANASHI", model.CharacterMap["00"])
	// プリセット外のIDは行の別名で埋まる
	assert.Equal(t, "Stranger", model.CharacterMap["20"])
}

func TestCharacterMapToolAliases(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
	})
	toolPath := writeCSV(t, dir, "tool_single2.csv", []string{
		header(),
		"ENEMY,-1,ToolName,DECK001,,0x2A,0,20,0,0",
		"ENEMY,-1,Ignored,DECK001,,00,0,20,0,0",
	})

	model, err := LoadModel(path, toolPath)
	require.NoError(t, err)

	// 補助CSVの別名が取り込まれる（既存キーは先勝ち）
	assert.Equal(t, "ToolName", model.CharacterMap["2A"])
	assert.Equal(t, "NANASHI", model.CharacterMap["00"])
}

func TestCharacterOptionsSorted(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Hero,,,00,0,20,0,0",
	})

	model, err := LoadModel(path, "")
	require.NoError(t, err)

	options := model.CharacterOptions()
	require.NotEmpty(t, options)
	assert.Equal(t, "0 - NANASHI", options[0])
	// ID昇順に並ぶ
	assert.True(t, sortedByLeadingNumber(options), "options are not sorted: %v", options)
}

func sortedByLeadingNumber(options []string) bool {
	last := -1
	for _, option := range options {
		fields := strings.SplitN(option, " - ", 2)
		if len(fields) != 2 {
			return false
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return false
		}
		if n < last {
			return false
		}
		last = n
	}
	return true
}
