// Package stageset はステージセットのバイナリテーブルを符号化・復号します。
//
// ファイルレイアウト（リトルエンディアン）:
//
//	offset 0  : u32 total_size（実ファイルサイズ - 4）
//	offset 4  : u32 record_count
//	offset 8  : u32 strings_offset
//	offset 12 : record_count × 20バイトのレコード
//	...       : パディング（strings_offsetまで、書き換え時もそのまま保持）
//	strings_offset : NUL終端文字列のヒープ（エンコーディングは自動判定）
package stageset

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bbmods/go-phantom/internal/bbmods/models"
	"github.com/bbmods/go-phantom/internal/bbmods/textenc"
)

const (
	headerSize = 12
	recordSize = 20
)

// StageSet は1つのステージセットファイルの解析結果を保持します。
// 構築後は読み取り専用で、再読み込み時は新しいインスタンスに置き換えます。
type StageSet struct {
	Path          string
	Data          []byte
	TotalSize     uint32
	Count         uint32
	StringsOffset uint32
	Records       []models.RawRecord
	Padding       []byte
	StringBlob    []byte
	Encoding      textenc.Encoding
	Strings       map[int]string

	// DecodeDegraded は全エンコーディング候補が失敗したことを示します。
	// この場合StringsにはUTF-8として解読できた文字列のみが含まれます。
	DecodeDegraded bool
}

// Load はステージセットファイルを読み込んで解析します
func Load(path string) (*StageSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	return Parse(path, data)
}

// Parse はバイト列からステージセットを解析します
func Parse(path string, data []byte) (*StageSet, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: ファイルが小さすぎます (%dバイト)", ErrMalformedHeader, len(data))
	}

	totalSize := binary.LittleEndian.Uint32(data[0:4])
	count := binary.LittleEndian.Uint32(data[4:8])
	stringsOffset := binary.LittleEndian.Uint32(data[8:12])

	recordsEnd := headerSize + int(count)*recordSize
	if recordsEnd > len(data) {
		return nil, fmt.Errorf("%w: レコード数%dがファイルサイズを超えています", ErrMalformedHeader, count)
	}
	if int(stringsOffset) < recordsEnd || int(stringsOffset) > len(data) {
		return nil, fmt.Errorf("%w: strings_offset=%d", ErrMalformedHeader, stringsOffset)
	}

	records := make([]models.RawRecord, 0, count)
	for i := 0; i < int(count); i++ {
		base := headerSize + i*recordSize
		records = append(records, models.RawRecord{
			UnkFlag:     binary.LittleEndian.Uint32(data[base : base+4]),
			NameOff:     binary.LittleEndian.Uint32(data[base+4 : base+8]),
			LabelOff:    binary.LittleEndian.Uint32(data[base+8 : base+12]),
			InternalOff: binary.LittleEndian.Uint32(data[base+12 : base+16]),
			IDFlags:     binary.LittleEndian.Uint32(data[base+16 : base+20]),
		})
	}

	blob := data[stringsOffset:]
	result := textenc.DetectHeap(blob)

	return &StageSet{
		Path:           path,
		Data:           data,
		TotalSize:      totalSize,
		Count:          count,
		StringsOffset:  stringsOffset,
		Records:        records,
		Padding:        data[recordsEnd:stringsOffset],
		StringBlob:     blob,
		Encoding:       result.Encoding,
		Strings:        result.Strings,
		DecodeDegraded: result.AllFailed,
	}, nil
}

// StringAt はヒープオフセットに対応する文字列を返します。
// 文字列の先頭として記録されていないオフセットは "<@offset>" の
// プレースホルダで返します（エラーにはしません）。
func (s *StageSet) StringAt(offset uint32) string {
	if text, ok := s.Strings[int(offset)]; ok {
		return text
	}
	return fmt.Sprintf("<@%d>", offset)
}
