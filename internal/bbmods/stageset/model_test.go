package stageset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbmods/go-phantom/internal/bbmods/fileutil"
	"github.com/bbmods/go-phantom/internal/bbmods/models"
	"github.com/bbmods/go-phantom/internal/bbmods/textenc"
)

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func twoStageBytes() []byte {
	return buildStageSetBytes([]testStage{
		{unkFlag: 1, category: 2, stageID: 5, name: []byte("Alpha"), label: []byte("map_a"), internal: []byte("st01")},
		{unkFlag: 0, category: 3, stageID: 7, name: []byte("Beta"), label: []byte("map_b"), internal: []byte("st02")},
	}, []byte{0xAA, 0xBB})
}

func TestModelEditSaveReload(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())

	model, err := LoadModel(corePath, "")
	require.NoError(t, err)
	require.Len(t, model.Entries, 2)
	assert.Equal(t, "Alpha", model.Entries[0].MapName)

	// 文字列と数値を書き換えて保存すると、再読み込み後も反映されている
	model.Entries[1].MapName = "Gamma"
	model.Entries[1].Category = 1
	require.NoError(t, model.Save(false))

	assert.Equal(t, "Gamma", model.Entries[1].MapName)
	assert.Equal(t, uint16(1), model.Entries[1].Category)

	reloaded, err := LoadModel(corePath, "")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", reloaded.Entries[1].MapName)
	assert.Equal(t, uint16(1), reloaded.Entries[1].Category)

	// パディングは保存後もそのまま
	assert.Equal(t, []byte{0xAA, 0xBB}, reloaded.Core.Padding)
}

func TestModelBackupOnce(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())
	original, err := os.ReadFile(corePath)
	require.NoError(t, err)

	model, err := LoadModel(corePath, "")
	require.NoError(t, err)

	model.Entries[0].MapName = "First"
	require.NoError(t, model.Save(false))

	// 初回保存時のバックアップは読み込み時点の内容
	backup, err := os.ReadFile(corePath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	// 2回目の保存ではバックアップは更新されない
	model.Entries[0].MapName = "Second"
	require.NoError(t, model.Save(false))

	backup2, err := os.ReadFile(corePath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, backup2)
}

func TestModelSaveDeduplicatesStrings(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())

	model, err := LoadModel(corePath, "")
	require.NoError(t, err)

	// 同じ文字列は一度だけヒープに書かれ、オフセットが共有される
	model.Entries[1].MapName = model.Entries[0].MapName
	require.NoError(t, model.Save(false))

	set, err := Load(corePath)
	require.NoError(t, err)
	assert.Equal(t, set.Records[0].NameOff, set.Records[1].NameOff)
}

func TestModelWithDisplayFile(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())
	displayPath := writeTestFile(t, dir, "stageset_en.dat", buildStageSetBytes([]testStage{
		{unkFlag: 1, category: 2, stageID: 5, name: []byte("Ruins"), label: []byte("map_a"), internal: []byte("st01")},
		{unkFlag: 0, category: 3, stageID: 7, name: []byte("Tower"), label: []byte("map_b"), internal: []byte("st02")},
	}, nil))

	model, err := LoadModel(corePath, displayPath)
	require.NoError(t, err)

	// 表示文字列は表示ファイル、コア文字列は参照用に保持される
	assert.Equal(t, "Ruins", model.Entries[0].MapName)
	assert.Equal(t, "Alpha", model.Entries[0].CoreMapName)

	// overwriteCoreStrings=falseではコアの文字列ヒープは温存される
	model.Entries[0].MapName = "Castle"
	model.Entries[0].StageID = 9
	require.NoError(t, model.Save(false))

	assert.Equal(t, "Castle", model.Entries[0].MapName)
	assert.Equal(t, "Alpha", model.Entries[0].CoreMapName)
	assert.Equal(t, uint16(9), model.Entries[0].StageID)

	core, err := Load(corePath)
	require.NoError(t, err)
	_, stageID := models.SplitIDFlags(core.Records[0].IDFlags)
	assert.Equal(t, uint16(9), stageID)
	assert.Equal(t, "Alpha", core.StringAt(core.Records[0].NameOff))

	// overwriteCoreStrings=trueではコアの文字列も表示文字列で再構築される
	require.NoError(t, model.Save(true))
	assert.Equal(t, "Castle", model.Entries[0].CoreMapName)
}

func TestModelDisplayFallsBackToCore(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())

	// 存在しない表示ファイルは無視され、単一ファイル運用になる
	model, err := LoadModel(corePath, filepath.Join(dir, "missing.dat"))
	require.NoError(t, err)
	assert.Empty(t, model.DisplayPath)
	assert.Equal(t, "Alpha", model.Entries[0].MapName)

	// コアと同一パスの表示ファイルも単一ファイル運用になる
	model, err = LoadModel(corePath, corePath)
	require.NoError(t, err)
	assert.Empty(t, model.DisplayPath)
}

func TestModelCountMismatch(t *testing.T) {
	dir := t.TempDir()
	corePath := writeTestFile(t, dir, "stageset.dat", twoStageBytes())
	displayPath := writeTestFile(t, dir, "stageset_en.dat", buildStageSetBytes([]testStage{
		{name: []byte("Only"), label: []byte("map"), internal: []byte("st")},
	}, nil))

	_, err := LoadModel(corePath, displayPath)
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestModelSaveEncodeFailureLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()

	// Shift-JISヒープのファイルを用意する
	sjis := []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67}
	data := buildStageSetBytes([]testStage{
		{name: sjis, label: []byte("map_a"), internal: []byte("st01")},
	}, nil)
	corePath := writeTestFile(t, dir, "stageset.dat", data)

	model, err := LoadModel(corePath, "")
	require.NoError(t, err)
	require.Equal(t, "shift_jis", model.Core.Encoding.Name)

	// Shift-JISで表現できない文字列を設定すると保存全体が失敗する
	model.Entries[0].MapName = "한글"
	err = model.Save(false)
	require.ErrorIs(t, err, textenc.ErrEncode)

	// ファイルは書き換えられず、バックアップも作成されない
	after, err := os.ReadFile(corePath)
	require.NoError(t, err)
	assert.Equal(t, data, after)
	assert.False(t, fileutil.FileExists(corePath+".bak"))
}
