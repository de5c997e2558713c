package memory

import "errors"

var (
	// ErrUnsupported はこの環境でメモリ編集を利用できない場合のエラー
	ErrUnsupported = errors.New("この環境ではメモリ編集を利用できません")

	// ErrInvalidPID はPIDが不正な場合のエラー
	ErrInvalidPID = errors.New("PIDが不正です")

	// ErrAttach はプロセスへのアタッチに失敗した場合のエラー
	ErrAttach = errors.New("プロセスへのアタッチに失敗しました")

	// ErrModuleResolve はモジュールのベースアドレスを解決できない場合のエラー
	ErrModuleResolve = errors.New("モジュールのベースアドレスを解決できません")

	// ErrNotAttached は未アタッチ状態で操作した場合のエラー
	ErrNotAttached = errors.New("プロセスにアタッチされていません")

	// ErrInvalidAddress はアドレスが不正な場合のエラー
	ErrInvalidAddress = errors.New("アドレスが不正です")

	// ErrInvalidSize は読み取りサイズが不正な場合のエラー
	ErrInvalidSize = errors.New("読み取りサイズが不正です")

	// ErrNoData は書き込むデータが空の場合のエラー
	ErrNoData = errors.New("書き込むデータがありません")

	// ErrReadMemory はOSのメモリ読み取り呼び出しに失敗した場合のエラー
	ErrReadMemory = errors.New("メモリの読み取りに失敗しました")

	// ErrWriteMemory はOSのメモリ書き込み呼び出しに失敗した場合のエラー
	ErrWriteMemory = errors.New("メモリの書き込みに失敗しました")

	// ErrShortWrite は書き込みサイズが一致しない場合のエラー（OS失敗とは区別）
	ErrShortWrite = errors.New("書き込みサイズが一致しません")

	// ErrShortRead は読み取りサイズが一致しない場合のエラー（OS失敗とは区別）
	ErrShortRead = errors.New("読み取りサイズが一致しません")

	// ErrInvalidSkillIndex はスキル番号が範囲外の場合のエラー
	ErrInvalidSkillIndex = errors.New("スキル番号が範囲外です")

	// ErrPointerUnresolved はスキルテーブルのポインタが解決できない場合のエラー
	ErrPointerUnresolved = errors.New("スキルテーブルのポインタを解決できません")

	// ErrLengthMismatch はブロック長が一致しない場合のエラー
	ErrLengthMismatch = errors.New("ブロック長が一致しません")

	// ErrProcessNotFound は対象プロセスが見つからない場合のエラー
	ErrProcessNotFound = errors.New("対象プロセスが見つかりません")
)
