package stageset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bbmods/go-phantom/internal/bbmods/fileutil"
	"github.com/bbmods/go-phantom/internal/bbmods/models"
	"github.com/bbmods/go-phantom/internal/bbmods/textenc"
)

// Model はコアファイルと任意の表示ファイルを統合した編集モデルです。
// 文字列フィールドは表示ファイル（なければコアファイル）から取り込み、
// コアファイル側の文字列は参照用としてそのまま保持します。
type Model struct {
	CorePath    string
	DisplayPath string // 空の場合は単一ファイル運用
	Core        *StageSet
	Display     *StageSet
	Entries     []*models.StageEntry
}

// LoadModel はステージセットの編集モデルを構築します。
// 表示ファイルはコアファイルと異なる実在のパスが指定された場合のみ使用します。
func LoadModel(corePath, displayPath string) (*Model, error) {
	m := &Model{CorePath: corePath}
	if displayPath != "" && displayPath != corePath && fileutil.FileExists(displayPath) {
		m.DisplayPath = displayPath
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// load はファイルを解析してエントリ一覧を再構築します。
// 途中で失敗した場合、モデルの状態は変更されません。
func (m *Model) load() error {
	core, err := Load(m.CorePath)
	if err != nil {
		return err
	}

	var display *StageSet
	if m.DisplayPath != "" {
		display, err = Load(m.DisplayPath)
		if err != nil {
			return err
		}
	}

	source := core
	if display != nil {
		source = display
	}
	if source.Count != core.Count {
		return fmt.Errorf("%w: core=%d display=%d", ErrCountMismatch, core.Count, source.Count)
	}

	entries := make([]*models.StageEntry, 0, core.Count)
	for idx := 0; idx < int(core.Count); idx++ {
		coreRecord := core.Records[idx]
		sourceRecord := source.Records[idx]
		category, stageID := models.SplitIDFlags(coreRecord.IDFlags)
		entries = append(entries, &models.StageEntry{
			Index:            idx,
			UnkFlag:          coreRecord.UnkFlag,
			Category:         category,
			StageID:          stageID,
			MapName:          source.StringAt(sourceRecord.NameOff),
			MapLabel:         source.StringAt(sourceRecord.LabelOff),
			InternalName:     source.StringAt(sourceRecord.InternalOff),
			CoreMapName:      core.StringAt(coreRecord.NameOff),
			CoreMapLabel:     core.StringAt(coreRecord.LabelOff),
			CoreInternalName: core.StringAt(coreRecord.InternalOff),
		})
	}

	m.Core = core
	m.Display = display
	m.Entries = entries
	return nil
}

// Reload はディスクの内容からモデルを再構築します
func (m *Model) Reload() error {
	return m.load()
}

// Save は現在のエントリ内容でファイルを書き戻します。
//
// 表示ファイルがある場合、表示ファイルは常に新しい文字列ヒープで再構築し、
// コアファイルはoverwriteCoreStringsがtrueなら同様に再構築、falseなら
// 元のヒープと文字列オフセットをそのまま流用します。
// 書き込み対象には初回のみバックアップを作成し、書き込み後はディスクから
// 再読み込みして保存結果と一致する状態に戻します。
func (m *Model) Save(overwriteCoreStrings bool) error {
	if len(m.Entries) == 0 {
		return ErrNoEntries
	}
	if m.Core == nil {
		return ErrNotLoaded
	}

	// 先に全ペイロードを構築し、エンコード失敗時に一切書き込まないようにする
	if m.DisplayPath != "" && m.Display != nil {
		displayPayload, err := buildWithStrings(m.Display, m.Entries, m.Display.Encoding)
		if err != nil {
			return err
		}
		var corePayload []byte
		if overwriteCoreStrings {
			corePayload, err = buildWithStrings(m.Core, m.Entries, m.Core.Encoding)
			if err != nil {
				return err
			}
		} else {
			corePayload = buildWithExistingStrings(m.Core, m.Entries)
		}
		if err := writeWithBackup(m.DisplayPath, displayPayload); err != nil {
			return err
		}
		if err := writeWithBackup(m.CorePath, corePayload); err != nil {
			return err
		}
	} else {
		payload, err := buildWithStrings(m.Core, m.Entries, m.Core.Encoding)
		if err != nil {
			return err
		}
		if err := writeWithBackup(m.CorePath, payload); err != nil {
			return err
		}
	}

	return m.load()
}

// buildWithStrings はエントリの文字列から新しいヒープを構築してファイル全体を
// 再符号化します。同一の文字列は一度だけ書き込み、初出のオフセットを共有します。
func buildWithStrings(template *StageSet, entries []*models.StageEntry, enc textenc.Encoding) ([]byte, error) {
	offsets := make(map[string]uint32)
	var blob bytes.Buffer

	addString := func(value string) (uint32, error) {
		if off, ok := offsets[value]; ok {
			return off, nil
		}
		encoded, err := enc.Encode(value)
		if err != nil {
			return 0, err
		}
		off := uint32(blob.Len())
		offsets[value] = off
		blob.Write(encoded)
		blob.WriteByte(0)
		return off, nil
	}

	records := make([]byte, 0, len(entries)*recordSize)
	var rec [recordSize]byte
	for _, stage := range entries {
		nameOff, err := addString(stage.MapName)
		if err != nil {
			return nil, err
		}
		labelOff, err := addString(stage.MapLabel)
		if err != nil {
			return nil, err
		}
		internalOff, err := addString(stage.InternalName)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(rec[0:4], stage.UnkFlag)
		binary.LittleEndian.PutUint32(rec[4:8], nameOff)
		binary.LittleEndian.PutUint32(rec[8:12], labelOff)
		binary.LittleEndian.PutUint32(rec[12:16], internalOff)
		binary.LittleEndian.PutUint32(rec[16:20], models.ComposeIDFlags(stage.Category, stage.StageID))
		records = append(records, rec[:]...)
	}

	return assemble(records, template.Padding, blob.Bytes(), len(entries)), nil
}

// buildWithExistingStrings はテンプレートの文字列ヒープとオフセットをそのまま
// 流用し、数値フィールドのみ現在のエントリ内容で再符号化します。
//
// テンプレートのレコードと現在のエントリ一覧が位置的に1:1で対応している前提
// です。エントリの並び替えを行うと文字列の対応が静かにずれます。
func buildWithExistingStrings(template *StageSet, entries []*models.StageEntry) []byte {
	records := make([]byte, 0, len(entries)*recordSize)
	var rec [recordSize]byte
	for i, stage := range entries {
		if i >= len(template.Records) {
			break
		}
		raw := template.Records[i]
		binary.LittleEndian.PutUint32(rec[0:4], stage.UnkFlag)
		binary.LittleEndian.PutUint32(rec[4:8], raw.NameOff)
		binary.LittleEndian.PutUint32(rec[8:12], raw.LabelOff)
		binary.LittleEndian.PutUint32(rec[12:16], raw.InternalOff)
		binary.LittleEndian.PutUint32(rec[16:20], models.ComposeIDFlags(stage.Category, stage.StageID))
		records = append(records, rec[:]...)
	}

	return assemble(records, template.Padding, template.StringBlob, len(entries))
}

// assemble はヘッダー・レコード・パディング・ヒープを結合します。
// total_sizeには実サイズより4小さい値を格納します（復号時と対称）。
func assemble(records, padding, blob []byte, count int) []byte {
	stringsOffset := headerSize + len(records) + len(padding)
	totalSize := stringsOffset + len(blob)

	out := make([]byte, 0, totalSize)
	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(totalSize-4))
	binary.LittleEndian.PutUint32(header[4:8], uint32(count))
	binary.LittleEndian.PutUint32(header[8:12], uint32(stringsOffset))
	out = append(out, header[:]...)
	out = append(out, records...)
	out = append(out, padding...)
	out = append(out, blob...)
	return out
}

func writeWithBackup(path string, payload []byte) error {
	if err := fileutil.BackupOnce(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFile, path, err)
	}
	return nil
}
