package memory

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bbmods/go-phantom/internal/bbmods/interfaces"
)

// SkillTable はスキルテーブルのポインタ解決とブロック読み書きを行います。
//
// テーブル先頭アドレスは静的オフセットからポインタ値を一度だけ読み取って
// キャッシュします。キャッシュ済みの状態で読み書きに失敗した場合は、
// ポインタが移動した可能性があるためキャッシュを破棄して一度だけ再解決を
// 試みます。再試行後の失敗はそのまま呼び出し元に返します（それ以上の
// 自動再試行はありません）。
type SkillTable struct {
	client interfaces.MemoryClient
	logger interfaces.Logger
	cache  *BlockCache

	tableBase uint64
	resolved  bool
}

// NewSkillTable は新しいSkillTableを作成します。loggerはnilでも構いません。
func NewSkillTable(client interfaces.MemoryClient, logger interfaces.Logger) *SkillTable {
	return &SkillTable{
		client: client,
		logger: logger,
		cache:  NewBlockCache(),
	}
}

// TableBase は解決済みのテーブル先頭アドレスを返します
func (t *SkillTable) TableBase() (uint64, bool) {
	return t.tableBase, t.resolved
}

// Invalidate はキャッシュ済みのテーブル先頭アドレスと解決済みブロックを
// すべて破棄します
func (t *SkillTable) Invalidate() {
	t.tableBase = 0
	t.resolved = false
	t.cache.Clear()
}

// ResolveBlock は指定スキルのメモリブロック位置を解決します。
// テーブルポインタが解決できない場合は静的な相対オフセットで代替します。
func (t *SkillTable) ResolveBlock(index int) (BlockInfo, error) {
	if index < 0 || index >= MaxSkillIndex {
		return BlockInfo{}, fmt.Errorf("%w: %d", ErrInvalidSkillIndex, index)
	}
	key := BlockKey(index)
	if info, ok := t.cache.Get(key); ok {
		return info, nil
	}

	var address uint64
	base, err := t.tableBaseAddress()
	switch {
	case err == nil:
		address = base + uint64(index)*SkillBlockSize
	case errors.Is(err, ErrNotAttached):
		return BlockInfo{}, err
	default:
		// ポインタ未解決時は静的オフセットで代替する
		fallback, ok := t.client.AddressForOffset(RelativeOffsetForSkill(index))
		if !ok {
			return BlockInfo{}, err
		}
		address = fallback
	}

	info := BlockInfo{Address: address, Length: SkillBlockSize, Label: key}
	t.cache.Put(key, info)
	return info, nil
}

// ReadBlock は指定スキルのメモリブロックを読み取ります。
// キャッシュ済みポインタでの失敗時は一度だけ再解決して再試行します。
func (t *SkillTable) ReadBlock(index int) ([]byte, error) {
	retried := false
	for {
		info, err := t.ResolveBlock(index)
		if err != nil {
			return nil, err
		}

		data, err := t.client.ReadMemory(info.Address, info.Length)
		if err == nil && len(data) != info.Length {
			err = fmt.Errorf("%w: %d/%dバイト", ErrShortRead, len(data), info.Length)
		}
		if err == nil {
			return data, nil
		}

		if !retried && t.resolved {
			// ポインタが移動した可能性があるため、一度だけ再解決する
			retried = true
			t.Invalidate()
			continue
		}
		return nil, err
	}
}

// WriteBlock は指定スキルのメモリブロックを書き換えます。
// データ長はブロック長と完全に一致している必要があります。
func (t *SkillTable) WriteBlock(index int, data []byte) error {
	if len(data) != SkillBlockSize {
		return fmt.Errorf("%w: %dバイト必要ですが%dバイトでした", ErrLengthMismatch, SkillBlockSize, len(data))
	}

	retried := false
	for {
		info, err := t.ResolveBlock(index)
		if err != nil {
			return err
		}

		err = t.client.WriteMemory(info.Address, data)
		if err == nil {
			return nil
		}

		if !retried && t.resolved {
			// ポインタが移動した可能性があるため、一度だけ再解決する
			retried = true
			t.Invalidate()
			continue
		}
		return err
	}
}

// tableBaseAddress はテーブル先頭アドレスを返します。
// 未解決の場合は静的オフセットからポインタ値を読み取ってキャッシュします。
func (t *SkillTable) tableBaseAddress() (uint64, error) {
	if !t.client.Attached() {
		return 0, ErrNotAttached
	}
	if t.resolved {
		return t.tableBase, nil
	}

	pointerAddress, ok := t.client.AddressForOffset(SkillTablePointerOffset)
	if !ok {
		return 0, ErrNotAttached
	}
	payload, err := t.client.ReadMemory(pointerAddress, pointerSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPointerUnresolved, err)
	}
	if len(payload) < pointerSize {
		return 0, fmt.Errorf("%w: ポインタ値が%dバイトしか読めませんでした", ErrPointerUnresolved, len(payload))
	}

	base := binary.LittleEndian.Uint64(payload)
	if base == 0 {
		return 0, ErrPointerUnresolved
	}

	t.tableBase = base
	t.resolved = true
	if t.logger != nil {
		t.logger.Printf("スキルテーブル: 0x%016X\n", base)
	}
	return base, nil
}
