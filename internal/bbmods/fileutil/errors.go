package fileutil

import "errors"

var (
	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルを読み込めません")

	// ErrWriteFile はファイルの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("ファイルを書き込めません")

	// ErrCreateDirectory はディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("ディレクトリを作成できません")

	// ErrBackup はバックアップの作成に失敗した場合のエラー
	ErrBackup = errors.New("バックアップを作成できません")
)
