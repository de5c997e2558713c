package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCharacterID はキャラクターIDの上限値です
const MaxCharacterID = 0x2F

// ParseCharacterNumber はキャラクターID表記を数値として解釈します。
// 10進（0x等の接頭辞付きを含む）を優先し、失敗した場合は16進として再解釈します。
func ParseCharacterNumber(value string) (int, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(text, 0, 64); err == nil {
		return int(n), true
	}
	if n, err := strconv.ParseInt(text, 16, 64); err == nil {
		return int(n), true
	}
	return 0, false
}

// CoerceCharacterID は任意の表記を2桁大文字16進の正規形に変換します。
// 数値は0〜MaxCharacterIDに丸め、解釈できない場合は"00"になります。
func CoerceCharacterID(value string) string {
	number, ok := ParseCharacterNumber(value)
	if !ok {
		number = 0
	}
	if number < 0 {
		number = 0
	}
	if number > MaxCharacterID {
		number = MaxCharacterID
	}
	return fmt.Sprintf("%02X", number)
}

// NormalizeCharacterKey は範囲内のキャラクターIDを正規形キーに変換します。
// 範囲外または解釈できない表記はfalseを返します。
func NormalizeCharacterKey(value string) (string, bool) {
	number, ok := ParseCharacterNumber(value)
	if !ok {
		return "", false
	}
	if number < 0 || number > MaxCharacterID {
		return "", false
	}
	return fmt.Sprintf("%02X", number), true
}

// CharacterDisplayValue はキャラクターIDの表示用数値文字列を返します。
// 解釈できない表記は空白除去のみ行ってそのまま返します。
func CharacterDisplayValue(value string) string {
	number, ok := ParseCharacterNumber(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	return strconv.Itoa(number)
}

// CharacterDisplayLabel は「数値 - 名前」形式の表示ラベルを返します
func CharacterDisplayLabel(code, name string) string {
	return fmt.Sprintf("%s - %s", CharacterDisplayValue(code), name)
}
