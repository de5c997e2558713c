// Package interfaces はbbmodsツールで使用するインターフェースを定義します
package interfaces

// MemoryClient はプロセスメモリへのアクセスを抽象化します
type MemoryClient interface {
	// Attached はプロセスにアタッチ済みかどうかを返します
	Attached() bool

	// BaseAddress は先頭モジュールのベースアドレスを返します
	BaseAddress() (uint64, bool)

	// AddressForOffset はベースアドレスからの相対オフセットを絶対アドレスに
	// 変換します。未アタッチの場合はfalseを返します。
	AddressForOffset(relative uint64) (uint64, bool)

	// ReadMemory は指定アドレスからバイト列を読み取ります
	ReadMemory(address uint64, size int) ([]byte, error)

	// WriteMemory は指定アドレスにバイト列を書き込みます
	WriteMemory(address uint64, data []byte) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
