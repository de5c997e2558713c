package roster

import "errors"

var (
	// ErrParseCSV はCSVの解析に失敗した場合のエラー
	ErrParseCSV = errors.New("single2.csvを解析できません")

	// ErrEmptyFile はCSVにヘッダー行すらない場合のエラー
	ErrEmptyFile = errors.New("single2.csvが空です")

	// ErrNoRows は保存対象の行が存在しない場合のエラー
	ErrNoRows = errors.New("保存するミッション行がありません")

	// ErrRuleViolations は編成ルール違反により保存を中止した場合のエラー
	ErrRuleViolations = errors.New("ルール違反が検出されました")

	// ErrWriteFile はCSVの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("single2.csvを書き込めません")

	// ErrInvalidMissionIndex はミッション番号が範囲外の場合のエラー
	ErrInvalidMissionIndex = errors.New("ミッション番号が不正です")

	// ErrInvalidEntryIndex はエントリ番号が範囲外の場合のエラー
	ErrInvalidEntryIndex = errors.New("エントリ番号が不正です")

	// ErrGroupFull はミッションが既に上限の4キャラクターに達している場合のエラー
	ErrGroupFull = errors.New("ミッションは既に4キャラクターに達しています")

	// ErrLastEntry はミッション最後の1キャラクターを削除しようとした場合のエラー
	ErrLastEntry = errors.New("ミッションには最低1キャラクターが必要です")

	// ErrEmptyPreset はエントリを持たないプリセットを追加しようとした場合のエラー
	ErrEmptyPreset = errors.New("プリセットにエントリがありません")
)
