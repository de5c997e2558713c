// Package roster はsingle2.csvのミッション編成を管理します。
//
// CSVはUTF-8（BOM付き）のカンマ区切りで、ヘッダー行に続いて10列のデータ行が
// 並びます。PLAYER行を境界として連続する行が1つのミッションにまとまります。
package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bbmods/go-phantom/internal/bbmods/fileutil"
	"github.com/bbmods/go-phantom/internal/bbmods/models"
)

const columnCount = 10

// Model はsingle2.csvの解析結果と編集状態を保持します
type Model struct {
	Path     string
	ToolPath string // 名前参照用の補助CSV（存在しない場合は無視）

	Header       []string
	Entries      []*models.Single2Entry
	Groups       []*models.MissionGroup
	CharacterMap map[string]string
}

// LoadModel はsingle2.csvを読み込んでモデルを構築します
func LoadModel(path, toolPath string) (*Model, error) {
	m := &Model{Path: path, ToolPath: toolPath}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) load() error {
	data, err := fileutil.ReadFileStripBOM(m.Path)
	if err != nil {
		return err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseCSV, m.Path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, m.Path)
	}

	m.Header = rows[0]
	entries := make([]*models.Single2Entry, 0, len(rows)-1)
	for idx, row := range rows[1:] {
		entries = append(entries, rowToEntry(idx, row))
	}
	m.Entries = entries
	m.buildGroups()
	return nil
}

// Reload はディスクの内容からモデルを再構築します
func (m *Model) Reload() error {
	return m.load()
}

// Save は現在の編成内容でCSVを書き戻します。
// ルール違反がある場合はallowViolationsを指定しない限り書き込みません。
// 保存時は全グループを平坦化して連番を振り直し、初回のみバックアップを
// 作成し、書き込み後はディスクから再読み込みします。
func (m *Model) Save(allowViolations bool) error {
	if len(m.Entries) == 0 {
		return ErrNoRows
	}
	if violations := m.RuleViolations(); len(violations) > 0 && !allowViolations {
		return fmt.Errorf("%w:\n%s", ErrRuleViolations, strings.Join(violations, "\n"))
	}

	var flat []*models.Single2Entry
	for _, group := range m.Groups {
		flat = append(flat, group.Entries...)
	}
	for idx, entry := range flat {
		entry.Index = idx
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true
	if err := writer.Write(m.Header); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	for _, entry := range flat {
		if err := writer.Write(entry.AsRow()); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFile, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	if err := fileutil.BackupOnce(m.Path); err != nil {
		return err
	}
	if err := fileutil.WriteFileWithBOM(m.Path, buf.Bytes()); err != nil {
		return err
	}
	return m.load()
}

// buildGroups はエントリ一覧をミッショングループに分割します。
// PLAYER行を見つけるたびに新しいグループを開始し、PLAYER行が一度も
// 現れない場合は全行を1グループとして扱います。
func (m *Model) buildGroups() {
	var groups []*models.MissionGroup
	var current []*models.Single2Entry

	for _, entry := range m.Entries {
		if entry.IsPlayer() && len(current) > 0 {
			groups = append(groups, &models.MissionGroup{Index: len(groups), Entries: current})
			current = []*models.Single2Entry{entry}
			continue
		}
		current = append(current, entry)
	}
	if len(current) > 0 {
		groups = append(groups, &models.MissionGroup{Index: len(groups), Entries: current})
	}
	if len(groups) == 0 && len(m.Entries) > 0 {
		all := make([]*models.Single2Entry, len(m.Entries))
		copy(all, m.Entries)
		groups = []*models.MissionGroup{{Index: 0, Entries: all}}
	}

	m.Groups = groups
	m.reindexEntries()
	m.buildCharacterMap()
}

// reindexEntries はグループ順に平坦化してエントリ連番を振り直します
func (m *Model) reindexEntries() {
	var flat []*models.Single2Entry
	for groupIndex, group := range m.Groups {
		group.Index = groupIndex
		for _, entry := range group.Entries {
			entry.Index = len(flat)
			flat = append(flat, entry)
		}
	}
	m.Entries = flat
}

// RuleViolations は編成ルール違反の一覧を返します。
// 違反は保存を妨げる警告であり、読み込み自体は失敗しません。
func (m *Model) RuleViolations() []string {
	var violations []string
	for _, group := range m.Groups {
		if group.EntryCount() < 1 {
			violations = append(violations, fmt.Sprintf("Mission %03d has no characters.", group.Index))
		}
		if group.EntryCount() > 4 {
			violations = append(violations, fmt.Sprintf("Mission %03d exceeds 4 characters (%d).", group.Index, group.EntryCount()))
		}
		for _, entry := range group.Entries {
			actorType := entry.NormalizedActorType()
			if actorType != "" && actorType != "PLAYER" && strings.TrimSpace(entry.Deck) == "" {
				name := entry.Alias
				if name == "" {
					name = actorType
				}
				violations = append(violations, fmt.Sprintf("Mission %03d entry %03d (%s) is missing a deck.", group.Index, entry.Index, name))
			}
			if _, ok := models.NormalizeCharacterKey(entry.CharacterID); !ok {
				violations = append(violations, fmt.Sprintf("Mission %03d entry %03d has invalid character ID '%s'.", group.Index, entry.Index, models.CharacterDisplayValue(entry.CharacterID)))
			}
		}
	}
	return violations
}

// buildCharacterMap はキャラクターID→表示名の対応表を構築します。
// 既定のプリセット、読み込んだ行の別名、補助CSVの順に重ね、既に登録済みの
// キーは決して上書きしません（先勝ち）。
func (m *Model) buildCharacterMap() {
	mapping := make(map[string]string)
	for _, preset := range models.CharacterIDPresets {
		mapping[preset.Code] = preset.Name
	}

	for _, entry := range m.Entries {
		key, ok := models.NormalizeCharacterKey(entry.CharacterID)
		if !ok {
			continue
		}
		alias := strings.TrimSpace(entry.Alias)
		if alias == "" {
			continue
		}
		if _, exists := mapping[key]; !exists {
			mapping[key] = alias
		}
	}

	m.mergeToolAliases(mapping)
	m.CharacterMap = mapping
}

// mergeToolAliases は補助CSVの別名を対応表に取り込みます（先勝ち）
func (m *Model) mergeToolAliases(mapping map[string]string) {
	if m.ToolPath == "" || !fileutil.FileExists(m.ToolPath) {
		return
	}
	data, err := fileutil.ReadFileStripBOM(m.ToolPath)
	if err != nil {
		return
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return
	}
	for i, row := range rows {
		if i == 0 {
			// ヘッダー行
			continue
		}
		if len(row) <= 5 {
			continue
		}
		key, ok := models.NormalizeCharacterKey(strings.TrimSpace(row[5]))
		if !ok {
			continue
		}
		alias := ""
		if len(row) > 2 {
			alias = strings.TrimSpace(row[2])
		}
		if alias == "" {
			continue
		}
		if _, exists := mapping[key]; !exists {
			mapping[key] = alias
		}
	}
}

// RefreshCharacterMap は現在のエントリ内容から対応表を再構築します
func (m *Model) RefreshCharacterMap() {
	m.buildCharacterMap()
}

// CharacterOptions はID昇順に並べた表示ラベルの一覧を返します
func (m *Model) CharacterOptions() []string {
	type option struct {
		number int
		code   string
		name   string
	}
	var ordered []option
	for code, name := range m.CharacterMap {
		normalized, ok := models.NormalizeCharacterKey(code)
		if !ok {
			continue
		}
		number, ok := models.ParseCharacterNumber(normalized)
		if !ok {
			continue
		}
		ordered = append(ordered, option{number: number, code: normalized, name: name})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].number < ordered[j].number })

	labels := make([]string, 0, len(ordered))
	for _, opt := range ordered {
		labels = append(labels, models.CharacterDisplayLabel(opt.code, opt.name))
	}
	return labels
}

// parseIntDefault は整数フィールドを解析します。
// 空欄や解析できない値は既定値になります（エラーにはしません）。
func parseIntDefault(value string, def int) int {
	text := strings.TrimSpace(value)
	if text == "" {
		return def
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return def
	}
	return n
}

// rowToEntry はCSV行をエントリに変換します。
// 列が足りない場合は空欄で補い、多い場合は切り詰めます。
func rowToEntry(idx int, row []string) *models.Single2Entry {
	normalized := make([]string, columnCount)
	copy(normalized, row)
	return &models.Single2Entry{
		Index:       idx,
		ActorType:   strings.TrimSpace(normalized[0]),
		SpawnSlot:   parseIntDefault(normalized[1], -1),
		Alias:       strings.TrimSpace(normalized[2]),
		Deck:        strings.TrimSpace(normalized[3]),
		AIScript:    strings.TrimSpace(normalized[4]),
		CharacterID: models.CoerceCharacterID(normalized[5]),
		SpawnIndex:  parseIntDefault(normalized[6], 0),
		HP:          parseIntDefault(normalized[7], 20),
		FlagA:       parseIntDefault(normalized[8], 0),
		FlagB:       parseIntDefault(normalized[9], 0),
	}
}
