package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/bbmods/go-phantom/internal/bbmods/fileutil"
	"github.com/bbmods/go-phantom/internal/bbmods/models"
)

// EnsureSeed はsingle2.csvが存在しない場合にデバッグ用プリセット入りの
// 初期ファイルを作成します。既に存在する場合は何もしません。
func EnsureSeed(path string) error {
	if fileutil.FileExists(path) {
		return nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true
	if err := writer.Write(models.Single2Header); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	for i, preset := range models.DebugTestPresets {
		for _, row := range preset.Rows() {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("%w: %w", ErrWriteFile, err)
			}
		}
		writer.Flush()
		// プリセット間は空行で区切る（読み込み時には無視される）
		if i != len(models.DebugTestPresets)-1 {
			buf.WriteString("\r\n")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	return fileutil.WriteFileWithBOM(path, buf.Bytes())
}
