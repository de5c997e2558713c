// Package textenc は文字列ヒープのテキストエンコーディング判定と変換を行います
package textenc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Encoding は文字列ヒープのテキストエンコーディングを表します。
// encがnilの場合はUTF-8として扱います。
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// UTF8 はUTF-8のエンコーディングを返します
func UTF8() Encoding {
	return Encoding{Name: "utf-8"}
}

// ShiftJIS はShift_JISのエンコーディングを返します
func ShiftJIS() Encoding {
	return Encoding{Name: "shift_jis", enc: japanese.ShiftJIS}
}

// EUCJP はEUC-JPのエンコーディングを返します
func EUCJP() Encoding {
	return Encoding{Name: "euc-jp", enc: japanese.EUCJP}
}

// ヒープ解読の候補。先頭から順に試し、最初に全文字列を解読できたものを採用する。
func candidates() []Encoding {
	return []Encoding{UTF8(), ShiftJIS(), EUCJP()}
}

// Decode はバイト列を文字列に解読します。
// 解読できないバイト列（置換文字への劣化を含む）はエラーになります。
func (e Encoding) Decode(b []byte) (string, error) {
	if e.enc == nil {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: %s", ErrDecode, e.Name)
		}
		return string(b), nil
	}
	decoded, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, e.Name, err)
	}
	// x/textのデコーダは不正なバイトをU+FFFDに置換するため、置換の有無で判定する
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("%w: %s", ErrDecode, e.Name)
	}
	return string(decoded), nil
}

// Encode は文字列をこのエンコーディングのバイト列に変換します。
// 表現できない文字を含む場合は対象の文字列を添えてエラーを返します。
func (e Encoding) Encode(s string) ([]byte, error) {
	if e.enc == nil {
		return []byte(s), nil
	}
	encoded, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %q", ErrEncode, e.Name, s)
	}
	return encoded, nil
}

// Result はヒープ解読の結果を表します。
// AllFailedがtrueの場合は全候補が失敗しており、StringsにはUTF-8として
// 解読できた文字列のみが含まれます（劣化動作）。
type Result struct {
	Encoding  Encoding
	Strings   map[int]string
	AllFailed bool
}

// DetectHeap はNUL終端文字列ヒープのエンコーディングを判定し、
// オフセットから文字列への対応表を構築します。
func DetectHeap(blob []byte) Result {
	for _, cand := range candidates() {
		strings, err := decodeRuns(blob, cand)
		if err == nil {
			return Result{Encoding: cand, Strings: strings}
		}
	}

	// 全候補が失敗した場合はUTF-8として扱い、解読できた文字列のみを保持する
	partial := make(map[int]string)
	forEachRun(blob, func(offset int, raw []byte) {
		if utf8.Valid(raw) {
			partial[offset] = string(raw)
		}
	})
	return Result{Encoding: UTF8(), Strings: partial, AllFailed: true}
}

// decodeRuns はヒープ内の全文字列を指定エンコーディングで解読します。
// 1つでも解読に失敗した場合はエラーを返します。
func decodeRuns(blob []byte, enc Encoding) (map[int]string, error) {
	out := make(map[int]string)
	var firstErr error
	forEachRun(blob, func(offset int, raw []byte) {
		if firstErr != nil {
			return
		}
		text, err := enc.Decode(raw)
		if err != nil {
			firstErr = err
			return
		}
		out[offset] = text
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// forEachRun はNUL終端文字列を先頭から順に走査します。
// 終端NULのない末尾バイトは対象外です。
func forEachRun(blob []byte, fn func(offset int, raw []byte)) {
	pos := 0
	for pos < len(blob) {
		end := bytes.IndexByte(blob[pos:], 0)
		if end < 0 {
			break
		}
		fn(pos, blob[pos:pos+end])
		pos += end + 1
	}
}
