package hexcodec

import "errors"

// ErrInvalidToken は16進トークンとして解釈できない場合のエラー
var ErrInvalidToken = errors.New("不正な16進トークンです")
