package config

import "errors"

var (
	// ErrReadConfig は設定ファイルの読み込みに失敗した場合のエラー
	ErrReadConfig = errors.New("設定ファイルを読み込めません")

	// ErrParseConfig は設定ファイルの解析に失敗した場合のエラー
	ErrParseConfig = errors.New("設定ファイルを解析できません")

	// ErrWriteConfig は設定ファイルの書き込みに失敗した場合のエラー
	ErrWriteConfig = errors.New("設定ファイルを書き込めません")

	// ErrConfigExists は設定ファイルが既に存在する場合のエラー
	ErrConfigExists = errors.New("設定ファイルが既に存在します")
)
