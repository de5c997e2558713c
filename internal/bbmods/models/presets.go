package models

import "strings"

// CharacterPreset は既知キャラクターIDの既定名です
type CharacterPreset struct {
	Code string
	Name string
}

// CharacterIDPresets は既知キャラクターIDの既定名一覧です
var CharacterIDPresets = []CharacterPreset{
	{"00", "NANASHI"},
	{"01", "EDGAR"},
	{"02", "FREIA"},
	{"03", "MEISTER"},
	{"04", "CHUNKY"},
	{"05", "CUFF BUTTON"},
	{"06", "PH"},
	{"07", "KNOW"},
	{"08", "TSUBUTAKI"},
	{"09", "JD"},
	{"10", "SAMMAH"},
}

// PresetEntry はデバッグ用プリセットの1行分の値を表します。
// 空文字列の項目はCSV上でも空欄として扱われます。
type PresetEntry struct {
	ActorType   string
	SpawnSlot   string
	Alias       string
	Deck        string
	AIScript    string
	CharacterID string
	SpawnIndex  string
	HP          string
	FlagA       string
	FlagB       string
}

// Row はCSVの1行分の文字列列を返します。
// アクター種別は大文字化、キャラクターIDは正規形に変換されます。
func (e PresetEntry) Row() []string {
	return []string{
		strings.ToUpper(strings.TrimSpace(e.ActorType)),
		e.SpawnSlot,
		e.Alias,
		e.Deck,
		e.AIScript,
		CoerceCharacterID(e.CharacterID),
		e.SpawnIndex,
		e.HP,
		e.FlagA,
		e.FlagB,
	}
}

// Preset はデバッグ用ミッションプリセットを表します
type Preset struct {
	Label   string
	Entries []PresetEntry
}

// Rows は全エントリのCSV行を返します
func (p Preset) Rows() [][]string {
	rows := make([][]string, 0, len(p.Entries))
	for _, entry := range p.Entries {
		rows = append(rows, entry.Row())
	}
	return rows
}

// DebugTestPresets はデバッグ用ミッションプリセットの一覧です
var DebugTestPresets = []Preset{
	{
		Label: "Basic",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Basic"},
			{
				ActorType: "ENEMY", SpawnSlot: "1", Alias: "Enemy",
				Deck: "DECK000", AIScript: "chkprog000.ssb", CharacterID: "5",
				SpawnIndex: "1", HP: "20", FlagA: "0", FlagB: "0",
			},
		},
	},
	{
		Label: "Decoy",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Decoy"},
			{
				ActorType: "ENEMY", SpawnSlot: "1", Alias: "Decoy",
				Deck: "DECK000", AIScript: "chkprog000.ssb", CharacterID: "5",
				SpawnIndex: "1", HP: "20", FlagA: "0", FlagB: "0",
			},
		},
	},
	{
		Label: "Edgar-Dodge-Bot",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Edgar-Dodge-Bot"},
			{
				ActorType: "ENEMY", SpawnSlot: "1", Alias: "Edgar",
				Deck: "DECK000", AIScript: "eneprog_freya.ssb", CharacterID: "1",
				SpawnIndex: "1", HP: "9999", FlagA: "0", FlagB: "0",
			},
		},
	},
	{
		Label: "Freya-Jump-Bot",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Freya-Jump-Bot"},
			{
				ActorType: "ENEMY", SpawnSlot: "1", Alias: "Freya",
				Deck: "DECK000", AIScript: "eneprog_freya.ssb", CharacterID: "2",
				SpawnIndex: "1", HP: "9999", FlagA: "0", FlagB: "0",
			},
		},
	},
	{
		Label: "Program-0",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Program-0"},
			{
				ActorType: "ENEMY", SpawnSlot: "-1", Alias: "Program-0",
				Deck: "DECK068_2", AIScript: "eneprog000.ssb", CharacterID: "2",
				SpawnIndex: "1", HP: "20", FlagA: "0", FlagB: "0",
			},
		},
	},
	{
		Label: "Program-0-nodef",
		Entries: []PresetEntry{
			{ActorType: "PLAYER", SpawnSlot: "-1", Alias: "Program-0-nodef"},
			{
				ActorType: "ENEMY", SpawnSlot: "-1", Alias: "Program-0-nodef",
				Deck: "DECK068_2", AIScript: "eneprog000_nodef.ssb", CharacterID: "2",
				SpawnIndex: "1", HP: "20", FlagA: "0", FlagB: "0",
			},
		},
	},
}

// PresetByLabel はラベルに一致するプリセットを返します
func PresetByLabel(label string) (Preset, bool) {
	for _, preset := range DebugTestPresets {
		if strings.EqualFold(preset.Label, label) {
			return preset, true
		}
	}
	return Preset{}, false
}

// PresetLabels は全プリセットのラベル一覧を返します
func PresetLabels() []string {
	labels := make([]string, 0, len(DebugTestPresets))
	for _, preset := range DebugTestPresets {
		labels = append(labels, preset.Label)
	}
	return labels
}
