package textenc

import "errors"

var (
	// ErrDecode はバイト列を文字列に解読できない場合のエラー
	ErrDecode = errors.New("文字列を解読できません")

	// ErrEncode は文字列をバイト列にエンコードできない場合のエラー
	ErrEncode = errors.New("文字列をエンコードできません")
)
