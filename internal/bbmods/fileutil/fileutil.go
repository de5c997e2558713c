// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// UTF-8 BOM
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileExists はファイルが存在するか確認します
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFileStripBOM は先頭のUTF-8 BOMを除去してファイルを読み込みます
func ReadFileStripBOM(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, filename, err)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// WriteFileWithBOM はUTF-8 BOM付きでファイルに書き込みます。
// 出力先ディレクトリが存在しない場合は作成します。
func WriteFileWithBOM(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}
	payload := make([]byte, 0, len(utf8BOM)+len(data))
	payload = append(payload, utf8BOM...)
	payload = append(payload, data...)
	if err := os.WriteFile(filename, payload, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFile, filename, err)
	}
	return nil
}

// BackupOnce は初回書き込み時のみ現在のファイル内容を<path>.bakに複製します。
// バックアップが既に存在する場合、または元ファイルがない場合は何もしません。
func BackupOnce(path string) error {
	backup := path + ".bak"
	if FileExists(backup) {
		return nil
	}
	if !FileExists(path) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBackup, path, err)
	}
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBackup, backup, err)
	}
	return nil
}
