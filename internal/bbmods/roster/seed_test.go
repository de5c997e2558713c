package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbmods/go-phantom/internal/bbmods/models"
)

func TestEnsureSeedCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool", "single2.csv")

	require.NoError(t, EnsureSeed(path))

	// 生成されたファイルはそのまま読み込める
	model, err := LoadModel(path, "")
	require.NoError(t, err)
	assert.Equal(t, models.Single2Header, model.Header)

	// プリセット数ぶんのミッションができている（空行は無視される）
	assert.Len(t, model.Groups, len(models.DebugTestPresets))
}

func TestEnsureSeedKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "single2.csv", []string{
		header(),
		"PLAYER,-1,Custom,,,00,0,20,0,0",
	})
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, EnsureSeed(path))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}
