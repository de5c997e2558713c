//go:build windows

package memory

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const maxModules = 1024

// Bridge はWindowsプロセスへのアタッチ状態を管理します。
// 未アタッチ⇔アタッチ済みの2状態を持ち、状態を構成する項目
// （PID・ハンドル・ベースアドレス・モジュールパス）は常に一括で遷移します。
type Bridge struct {
	pid         uint32
	handle      windows.Handle
	baseAddress uint64
	modulePath  string
	attached    bool
}

// NewBridge は未アタッチ状態のBridgeを作成します
func NewBridge() *Bridge {
	return &Bridge{}
}

// Supported はこの環境でメモリ編集を利用できるかを返します
func (b *Bridge) Supported() bool {
	return true
}

// Attached はプロセスにアタッチ済みかどうかを返します
func (b *Bridge) Attached() bool {
	return b.attached
}

// PID はアタッチ中のプロセスIDを返します（未アタッチ時は0）
func (b *Bridge) PID() int {
	return int(b.pid)
}

// BaseAddress は先頭モジュールのベースアドレスを返します
func (b *Bridge) BaseAddress() (uint64, bool) {
	if !b.attached {
		return 0, false
	}
	return b.baseAddress, true
}

// ModulePath は先頭モジュールのファイルパスを返します
func (b *Bridge) ModulePath() string {
	return b.modulePath
}

// Attach は指定PIDのプロセスにアタッチし、先頭モジュールのベースアドレスを
// 解決します。同一PIDへ再アタッチした場合は何もせず成功します。
// 失敗した場合は未アタッチ状態のまま、OSのエラー内容を添えて返します。
func (b *Bridge) Attach(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	if b.attached && b.pid == uint32(pid) {
		return nil
	}

	b.Detach()

	const access = windows.PROCESS_QUERY_INFORMATION |
		windows.PROCESS_VM_OPERATION |
		windows.PROCESS_VM_READ |
		windows.PROCESS_VM_WRITE
	handle, err := windows.OpenProcess(access, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("%w: OpenProcess: %v", ErrAttach, err)
	}

	baseAddress, modulePath, err := resolvePrimaryModule(handle)
	if err != nil {
		windows.CloseHandle(handle)
		return fmt.Errorf("%w: %v", ErrAttach, err)
	}

	b.pid = uint32(pid)
	b.handle = handle
	b.baseAddress = baseAddress
	b.modulePath = modulePath
	b.attached = true
	return nil
}

// Detach はハンドルを解放して未アタッチ状態へ戻します。
// 状態を構成する項目は必ず同時にクリアされます。
func (b *Bridge) Detach() {
	if b.attached {
		windows.CloseHandle(b.handle)
	}
	b.pid = 0
	b.handle = 0
	b.baseAddress = 0
	b.modulePath = ""
	b.attached = false
}

// AddressForOffset はベースアドレスからの相対オフセットを絶対アドレスに変換します
func (b *Bridge) AddressForOffset(relative uint64) (uint64, bool) {
	if !b.attached {
		return 0, false
	}
	return b.baseAddress + relative, true
}

// ReadMemory は指定アドレスからバイト列を読み取ります
func (b *Bridge) ReadMemory(address uint64, size int) ([]byte, error) {
	if !b.attached {
		return nil, ErrNotAttached
	}
	if address == 0 {
		return nil, ErrInvalidAddress
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	buf := make([]byte, size)
	var read uintptr
	err := windows.ReadProcessMemory(b.handle, uintptr(address), &buf[0], uintptr(size), &read)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadProcessMemory: %v", ErrReadMemory, err)
	}
	if read == 0 {
		return nil, fmt.Errorf("%w: ReadProcessMemoryがデータを返しませんでした", ErrReadMemory)
	}
	return buf[:read], nil
}

// WriteMemory は指定アドレスにバイト列を書き込みます。
// 書き込みサイズの不一致はOS呼び出しの失敗とは区別して報告します。
func (b *Bridge) WriteMemory(address uint64, data []byte) error {
	if !b.attached {
		return ErrNotAttached
	}
	if address == 0 {
		return ErrInvalidAddress
	}
	if len(data) == 0 {
		return ErrNoData
	}

	var written uintptr
	err := windows.WriteProcessMemory(b.handle, uintptr(address), &data[0], uintptr(len(data)), &written)
	if err != nil {
		return fmt.Errorf("%w: WriteProcessMemory: %v", ErrWriteMemory, err)
	}
	if written != uintptr(len(data)) {
		return fmt.Errorf("%w: %d/%dバイト", ErrShortWrite, written, len(data))
	}
	return nil
}

// resolvePrimaryModule はプロセスの先頭モジュールのベースアドレスとパスを返します
func resolvePrimaryModule(handle windows.Handle) (uint64, string, error) {
	var modules [maxModules]windows.Handle
	var needed uint32
	err := windows.EnumProcessModulesEx(
		handle,
		&modules[0],
		uint32(unsafe.Sizeof(modules)),
		&needed,
		windows.LIST_MODULES_ALL,
	)
	if err != nil {
		return 0, "", fmt.Errorf("%w: EnumProcessModulesEx: %v", ErrModuleResolve, err)
	}

	count := int(needed) / int(unsafe.Sizeof(modules[0]))
	if count == 0 {
		return 0, "", ErrModuleResolve
	}

	// パスの取得は参考情報なので失敗しても続行する
	path := ""
	var buf [windows.MAX_LONG_PATH]uint16
	if err := windows.GetModuleFileNameEx(handle, modules[0], &buf[0], uint32(len(buf))); err == nil {
		path = windows.UTF16ToString(buf[:])
	}

	return uint64(modules[0]), path, nil
}

// FindProcessID はプロセス名（大文字小文字を区別しない）から実行中の
// プロセスIDを探します。見つからない場合はErrProcessNotFoundを返します。
func FindProcessID(name string) (int, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateToolhelp32Snapshot: %v", ErrProcessNotFound, err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snapshot, &entry); err != nil {
		return 0, fmt.Errorf("%w: Process32First: %v", ErrProcessNotFound, err)
	}
	for {
		exeFile := windows.UTF16ToString(entry.ExeFile[:])
		if strings.EqualFold(exeFile, name) {
			return int(entry.ProcessID), nil
		}
		if err := windows.Process32Next(snapshot, &entry); err != nil {
			break
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrProcessNotFound, name)
}
