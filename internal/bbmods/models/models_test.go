package models

import (
	"testing"
)

func TestComposeSplitIDFlags(t *testing.T) {
	tests := []struct {
		category uint16
		stageID  uint16
		idFlags  uint32
	}{
		{0, 0, 0x00000000},
		{2, 5, 0x00020005},
		{3, 0x0102, 0x00030102},
		{0xFFFF, 0xFFFF, 0xFFFFFFFF},
	}

	for _, test := range tests {
		composed := ComposeIDFlags(test.category, test.stageID)
		if composed != test.idFlags {
			t.Errorf("ComposeIDFlags(%d, %d) = 0x%08X; want 0x%08X", test.category, test.stageID, composed, test.idFlags)
		}
		category, stageID := SplitIDFlags(test.idFlags)
		if category != test.category || stageID != test.stageID {
			t.Errorf("SplitIDFlags(0x%08X) = (%d, %d); want (%d, %d)", test.idFlags, category, stageID, test.category, test.stageID)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if CategoryLabel(2) != "Standard" {
		t.Errorf("CategoryLabel(2) = %q; want %q", CategoryLabel(2), "Standard")
	}
	// 未知の値は数値のまま
	if CategoryLabel(99) != "99" {
		t.Errorf("CategoryLabel(99) = %q; want %q", CategoryLabel(99), "99")
	}
}

func TestSingle2EntryIsPlayer(t *testing.T) {
	tests := []struct {
		actorType string
		expected  bool
	}{
		{"PLAYER", true},
		{"player", true},
		{" Player ", true},
		{"ENEMY", false},
		{"", false},
	}

	for _, test := range tests {
		entry := &Single2Entry{ActorType: test.actorType}
		if entry.IsPlayer() != test.expected {
			t.Errorf("IsPlayer(%q) = %v; want %v", test.actorType, entry.IsPlayer(), test.expected)
		}
	}
}

func TestMissionGroupLeader(t *testing.T) {
	// PLAYER行があればそれが代表
	group := &MissionGroup{Entries: []*Single2Entry{
		{ActorType: "ENEMY", Alias: "Guard"},
		{ActorType: "PLAYER", Alias: "Hero"},
	}}
	if group.Leader().Alias != "Hero" {
		t.Errorf("Leader = %q; want %q", group.Leader().Alias, "Hero")
	}

	// なければ先頭行
	group = &MissionGroup{Entries: []*Single2Entry{
		{ActorType: "ENEMY", Alias: "Guard"},
		{ActorType: "BOSS00", Alias: "Boss"},
	}}
	if group.Leader().Alias != "Guard" {
		t.Errorf("Leader = %q; want %q", group.Leader().Alias, "Guard")
	}
}

func TestMissionGroupDeckGap(t *testing.T) {
	// PLAYERはデッキ不要
	group := &MissionGroup{Entries: []*Single2Entry{
		{ActorType: "PLAYER", Deck: ""},
		{ActorType: "ENEMY", Deck: "DECK001"},
	}}
	if group.HasDeckGap() {
		t.Errorf("PLAYER without deck should not be a gap")
	}

	group.Entries = append(group.Entries, &Single2Entry{ActorType: "ENEMY", Deck: ""})
	if !group.HasDeckGap() {
		t.Errorf("ENEMY without deck should be a gap")
	}
}

func TestMissionGroupSummaryLabel(t *testing.T) {
	group := &MissionGroup{
		Index: 3,
		Entries: []*Single2Entry{
			{ActorType: "PLAYER", Alias: "Hero"},
			{ActorType: "ENEMY", Deck: "DECK001"},
		},
	}
	if label := group.SummaryLabel(); label != "003 - Hero [2]" {
		t.Errorf("SummaryLabel = %q; want %q", label, "003 - Hero [2]")
	}

	// 5件以上は !COUNT、デッキ欠落は !DECK
	group.Entries = append(group.Entries,
		&Single2Entry{ActorType: "ENEMY", Deck: "DECK002"},
		&Single2Entry{ActorType: "ENEMY", Deck: "DECK003"},
		&Single2Entry{ActorType: "ENEMY", Deck: ""},
	)
	if label := group.SummaryLabel(); label != "003 - Hero [5] !COUNT/DECK" {
		t.Errorf("SummaryLabel = %q; want %q", label, "003 - Hero [5] !COUNT/DECK")
	}
}

func TestMissionName(t *testing.T) {
	// alias → ai_script → actor_type の順で採用
	group := &MissionGroup{Index: 1, Entries: []*Single2Entry{{ActorType: "PLAYER"}}}
	if group.MissionName() != "PLAYER" {
		t.Errorf("MissionName = %q; want %q", group.MissionName(), "PLAYER")
	}

	group.Entries[0].AIScript = "ai_boss"
	if group.MissionName() != "ai_boss" {
		t.Errorf("MissionName = %q; want %q", group.MissionName(), "ai_boss")
	}

	group.Entries[0].Alias = "Final Battle"
	if group.MissionName() != "Final Battle" {
		t.Errorf("MissionName = %q; want %q", group.MissionName(), "Final Battle")
	}
}
