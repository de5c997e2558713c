// Package models はbbmodsツールで使用するデータモデルを定義します
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRecord はステージセットの生レコード（20バイト）を表します。
// 読み込み後は変更されません。
type RawRecord struct {
	UnkFlag     uint32
	NameOff     uint32
	LabelOff    uint32
	InternalOff uint32
	IDFlags     uint32
}

// StageEntry は編集可能なステージ1件分の情報を表します。
// Core系のフィールドはコアファイル側の文字列で、参照専用です。
type StageEntry struct {
	Index        int
	UnkFlag      uint32
	Category     uint16
	StageID      uint16
	MapName      string
	MapLabel     string
	InternalName string

	CoreMapName      string
	CoreMapLabel     string
	CoreInternalName string
}

// ComposeIDFlags はcategoryとstage_idをid_flagsに合成します
func ComposeIDFlags(category, stageID uint16) uint32 {
	return uint32(category)<<16 | uint32(stageID)
}

// SplitIDFlags はid_flagsをcategoryとstage_idに分解します
func SplitIDFlags(idFlags uint32) (category, stageID uint16) {
	return uint16(idFlags >> 16), uint16(idFlags & 0xFFFF)
}

// CategoryLabels はカテゴリ値の表示名です
var CategoryLabels = map[uint16]string{
	0: "Unused",
	1: "Special",
	2: "Standard",
	3: "Boss",
}

// CategoryLabel はカテゴリ値の表示名を返します。未知の値は数値のまま返します。
func CategoryLabel(category uint16) string {
	if label, ok := CategoryLabels[category]; ok {
		return label
	}
	return strconv.Itoa(int(category))
}

// ActorTypes はsingle2.csvで使用されるアクター種別の一覧です
var ActorTypes = []string{
	"PLAYER",
	"ENEMY",
	"BOSS00",
	"BOSS01",
	"BOSS02",
	"BOSS03",
	"BOSS04",
}

// Single2Header はsingle2.csvの列定義です
var Single2Header = []string{
	"actor_type",
	"spawn_slot",
	"alias",
	"deck",
	"ai_script",
	"character_id",
	"spawn_index",
	"hp",
	"flag_a",
	"flag_b",
}

// Single2Entry はsingle2.csvの1行を表します
type Single2Entry struct {
	Index       int
	ActorType   string
	SpawnSlot   int
	Alias       string
	Deck        string
	AIScript    string
	CharacterID string
	SpawnIndex  int
	HP          int
	FlagA       int
	FlagB       int
}

// AsRow はCSVの1行分の文字列列を返します
func (e *Single2Entry) AsRow() []string {
	return []string{
		e.ActorType,
		strconv.Itoa(e.SpawnSlot),
		e.Alias,
		e.Deck,
		e.AIScript,
		e.CharacterID,
		strconv.Itoa(e.SpawnIndex),
		strconv.Itoa(e.HP),
		strconv.Itoa(e.FlagA),
		strconv.Itoa(e.FlagB),
	}
}

// NormalizedActorType は空白を除去して大文字化したアクター種別を返します
func (e *Single2Entry) NormalizedActorType() string {
	return strings.ToUpper(strings.TrimSpace(e.ActorType))
}

// IsPlayer はアクター種別がPLAYERかどうかを判定します
func (e *Single2Entry) IsPlayer() bool {
	return e.NormalizedActorType() == "PLAYER"
}

// MissionGroup はPLAYER行を先頭とするミッション1件分の編成を表します
type MissionGroup struct {
	Index   int
	Entries []*Single2Entry
}

// Leader はミッションの代表エントリを返します。
// PLAYER行があればその最初のもの、なければ先頭エントリです。
func (g *MissionGroup) Leader() *Single2Entry {
	for _, entry := range g.Entries {
		if entry.IsPlayer() {
			return entry
		}
	}
	return g.Entries[0]
}

// MissionName はミッションの表示名を返します
func (g *MissionGroup) MissionName() string {
	leader := g.Leader()
	if leader.Alias != "" {
		return leader.Alias
	}
	if leader.AIScript != "" {
		return leader.AIScript
	}
	if leader.ActorType != "" {
		return leader.ActorType
	}
	return fmt.Sprintf("Mission %d", g.Index)
}

// EntryCount はエントリ数を返します
func (g *MissionGroup) EntryCount() int {
	return len(g.Entries)
}

// ParticipantCount はアクター種別の入っているエントリ数を返します
func (g *MissionGroup) ParticipantCount() int {
	count := 0
	for _, entry := range g.Entries {
		if strings.TrimSpace(entry.ActorType) != "" {
			count++
		}
	}
	return count
}

// NonPlayerCount はPLAYER以外のエントリ数を返します
func (g *MissionGroup) NonPlayerCount() int {
	count := 0
	for _, entry := range g.Entries {
		if !entry.IsPlayer() {
			count++
		}
	}
	return count
}

// HasDeckGap はPLAYER以外のエントリにデッキ未設定のものがあるかを返します
func (g *MissionGroup) HasDeckGap() bool {
	for _, entry := range g.Entries {
		if entry.NormalizedActorType() != "PLAYER" && strings.TrimSpace(entry.Deck) == "" {
			return true
		}
	}
	return false
}

// WithinLimits はエントリ数が1〜4の範囲に収まっているかを返します
func (g *MissionGroup) WithinLimits() bool {
	return g.EntryCount() >= 1 && g.EntryCount() <= 4
}

// SummaryLabel は一覧表示用の要約ラベルを返します。
// 規則違反がある場合は !COUNT / !DECK の警告を付記します。
func (g *MissionGroup) SummaryLabel() string {
	var flags []string
	if !g.WithinLimits() {
		flags = append(flags, "count")
	}
	if g.HasDeckGap() {
		flags = append(flags, "deck")
	}
	warning := ""
	if len(flags) > 0 {
		warning = " !" + strings.ToUpper(strings.Join(flags, "/"))
	}
	return fmt.Sprintf("%03d - %s [%d]%s", g.Index, g.MissionName(), g.EntryCount(), warning)
}
