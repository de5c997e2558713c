package stageset

import "errors"

var (
	// ErrReadFile はステージセットファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ステージセットファイルを読み込めません")

	// ErrWriteFile はステージセットファイルの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("ステージセットファイルを書き込めません")

	// ErrMalformedHeader はヘッダーがファイル内容と矛盾している場合のエラー
	ErrMalformedHeader = errors.New("ステージセットのヘッダーが不正です")

	// ErrCountMismatch はコアと表示ファイルのエントリ数が一致しない場合のエラー
	ErrCountMismatch = errors.New("コアファイルと表示ファイルのエントリ数が一致しません")

	// ErrNoEntries は保存対象のエントリが存在しない場合のエラー
	ErrNoEntries = errors.New("保存するステージがありません")

	// ErrNotLoaded はコアファイルが未読み込みの場合のエラー
	ErrNotLoaded = errors.New("コアファイルが読み込まれていません")
)
