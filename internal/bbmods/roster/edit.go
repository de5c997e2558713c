package roster

import (
	"fmt"
	"strings"

	"github.com/bbmods/go-phantom/internal/bbmods/models"
)

const maxGroupEntries = 4

// AddPresetGroup はプリセットから新しいミッショングループを追加します
func (m *Model) AddPresetGroup(preset models.Preset) (*models.MissionGroup, error) {
	rows := preset.Rows()
	if len(rows) == 0 {
		return nil, ErrEmptyPreset
	}
	entries := make([]*models.Single2Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(0, row))
	}
	group := &models.MissionGroup{Index: len(m.Groups), Entries: entries}
	m.Groups = append(m.Groups, group)
	m.reindexEntries()
	m.buildCharacterMap()
	return group, nil
}

// AddEntry は指定ミッションに新しいアクターを追加します。
// 既に4エントリあるミッションには追加できません。
func (m *Model) AddEntry(groupIndex int, actorType string) (*models.MissionGroup, error) {
	if groupIndex < 0 || groupIndex >= len(m.Groups) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMissionIndex, groupIndex)
	}
	group := m.Groups[groupIndex]
	if group.EntryCount() >= maxGroupEntries {
		return nil, ErrGroupFull
	}

	actorCode := strings.ToUpper(strings.TrimSpace(actorType))
	if actorCode == "" {
		actorCode = "ENEMY"
	}
	defaultDeck := "DECK000"
	if actorCode == "PLAYER" {
		defaultDeck = ""
	}
	group.Entries = append(group.Entries, &models.Single2Entry{
		ActorType:   actorCode,
		SpawnSlot:   -1,
		Alias:       titleCase(actorCode),
		Deck:        defaultDeck,
		AIScript:    "",
		CharacterID: "00",
		SpawnIndex:  0,
		HP:          20,
		FlagA:       0,
		FlagB:       0,
	})
	m.reindexEntries()
	m.buildCharacterMap()
	return group, nil
}

// RemoveEntry は指定ミッションからアクターを取り除きます。
// 最後の1エントリは削除できません。
func (m *Model) RemoveEntry(groupIndex, entryIndex int) (*models.MissionGroup, error) {
	if groupIndex < 0 || groupIndex >= len(m.Groups) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMissionIndex, groupIndex)
	}
	group := m.Groups[groupIndex]
	if entryIndex < 0 || entryIndex >= len(group.Entries) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEntryIndex, entryIndex)
	}
	if group.EntryCount() <= 1 {
		return nil, ErrLastEntry
	}
	group.Entries = append(group.Entries[:entryIndex], group.Entries[entryIndex+1:]...)
	m.reindexEntries()
	m.buildCharacterMap()
	return group, nil
}

// titleCase は先頭のみ大文字の表記を返します（"ENEMY" → "Enemy"）
func titleCase(s string) string {
	if s == "" {
		return "NewActor"
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
