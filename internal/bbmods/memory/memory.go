// Package memory は実行中プロセスのメモリ読み書きを行います。
//
// メモリ編集はWindowsプロセスのみを対象とし、他の環境では常に未対応
// エラーを返すスタブ実装がビルドされます。
package memory

import (
	"fmt"
	"strconv"

	"github.com/bbmods/go-phantom/internal/bbmods/interfaces"
)

// スキルメモリのレイアウト定数（ゲーム解析により判明した値）
const (
	// SkillBlockSize は1スキル分のメモリブロック長です
	SkillBlockSize = 0x90

	// SkillTablePointerOffset はスキルテーブル先頭を指すポインタの静的オフセットです
	SkillTablePointerOffset = 0x32558

	// FirstSkillRelativeOffset はポインタ未解決時に使う先頭スキルの静的オフセットです
	FirstSkillRelativeOffset = 0x32558

	// MaxSkillIndex は製品版に存在するスキル数です
	MaxSkillIndex = 0x2F0

	pointerSize = 8
)

var _ interfaces.MemoryClient = (*Bridge)(nil)

// SkillIndexFromHex は16進表記のスキルIDをインデックスに変換します
func SkillIndexFromHex(hexID string) (int, error) {
	index, err := strconv.ParseInt(hexID, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSkillIndex, hexID)
	}
	if index < 0 || index >= MaxSkillIndex {
		return 0, fmt.Errorf("%w: 0x%X", ErrInvalidSkillIndex, index)
	}
	return int(index), nil
}

// RelativeOffsetForSkill はスキルブロックの静的な相対オフセットを返します
func RelativeOffsetForSkill(index int) uint64 {
	return uint64(FirstSkillRelativeOffset) + uint64(index)*SkillBlockSize
}

// BlockKey はブロックキャッシュで使用するキーを返します
func BlockKey(index int) string {
	return fmt.Sprintf("0x%04X", index)
}
