// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"fmt"
)

// MockMemoryClient はテスト用のメモリクライアントモック。
// ReadFunc/WriteFuncを差し替えて任意の応答を再現できます。
type MockMemoryClient struct {
	IsAttached bool
	Base       uint64

	// Memory はアドレスからバイト列への単純な対応表です。
	// ReadFuncが未設定の場合に使用されます。
	Memory map[uint64][]byte

	ReadFunc  func(address uint64, size int) ([]byte, error)
	WriteFunc func(address uint64, data []byte) error

	// 呼び出し記録
	ReadCalls  []uint64
	WriteCalls []uint64
}

// NewMockMemoryClient はアタッチ済み状態のモックを作成します
func NewMockMemoryClient(base uint64) *MockMemoryClient {
	return &MockMemoryClient{
		IsAttached: true,
		Base:       base,
		Memory:     make(map[uint64][]byte),
	}
}

// Attached はアタッチ済みかどうかを返します
func (m *MockMemoryClient) Attached() bool {
	return m.IsAttached
}

// BaseAddress はベースアドレスを返します
func (m *MockMemoryClient) BaseAddress() (uint64, bool) {
	if !m.IsAttached {
		return 0, false
	}
	return m.Base, true
}

// AddressForOffset は相対オフセットを絶対アドレスに変換します
func (m *MockMemoryClient) AddressForOffset(relative uint64) (uint64, bool) {
	if !m.IsAttached {
		return 0, false
	}
	return m.Base + relative, true
}

// ReadMemory は指定アドレスからバイト列を読み取ります
func (m *MockMemoryClient) ReadMemory(address uint64, size int) ([]byte, error) {
	m.ReadCalls = append(m.ReadCalls, address)
	if m.ReadFunc != nil {
		return m.ReadFunc(address, size)
	}
	data, ok := m.Memory[address]
	if !ok {
		return nil, fmt.Errorf("unmapped address 0x%X", address)
	}
	if len(data) < size {
		return nil, errors.New("short read")
	}
	return data[:size], nil
}

// WriteMemory は指定アドレスにバイト列を書き込みます
func (m *MockMemoryClient) WriteMemory(address uint64, data []byte) error {
	m.WriteCalls = append(m.WriteCalls, address)
	if m.WriteFunc != nil {
		return m.WriteFunc(address, data)
	}
	m.Memory[address] = append([]byte(nil), data...)
	return nil
}
