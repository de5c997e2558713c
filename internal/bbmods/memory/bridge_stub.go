//go:build !windows

package memory

// Bridge は非Windows環境向けのスタブ実装です。
// メモリ編集はWindowsプロセスのみを対象とするため、常に未対応エラーを返します。
type Bridge struct{}

// NewBridge は未アタッチ状態のBridgeを作成します
func NewBridge() *Bridge {
	return &Bridge{}
}

// Supported はこの環境でメモリ編集を利用できるかを返します
func (b *Bridge) Supported() bool {
	return false
}

// Attached は常にfalseを返します
func (b *Bridge) Attached() bool {
	return false
}

// PID は常に0を返します
func (b *Bridge) PID() int {
	return 0
}

// BaseAddress は常に未解決を返します
func (b *Bridge) BaseAddress() (uint64, bool) {
	return 0, false
}

// ModulePath は常に空文字列を返します
func (b *Bridge) ModulePath() string {
	return ""
}

// Attach は常にErrUnsupportedを返します
func (b *Bridge) Attach(pid int) error {
	return ErrUnsupported
}

// Detach は何もしません
func (b *Bridge) Detach() {}

// AddressForOffset は常に未解決を返します
func (b *Bridge) AddressForOffset(relative uint64) (uint64, bool) {
	return 0, false
}

// ReadMemory は常にErrUnsupportedを返します
func (b *Bridge) ReadMemory(address uint64, size int) ([]byte, error) {
	return nil, ErrUnsupported
}

// WriteMemory は常にErrUnsupportedを返します
func (b *Bridge) WriteMemory(address uint64, data []byte) error {
	return ErrUnsupported
}

// FindProcessID は常にErrUnsupportedを返します
func FindProcessID(name string) (int, error) {
	return 0, ErrUnsupported
}
