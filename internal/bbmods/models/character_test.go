package models

import (
	"testing"
)

func TestParseCharacterNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"5", 5, true},       // 10進
		{"10", 10, true},     // 10進（16進の0x10ではない）
		{"0x1A", 0x1A, true}, // 0x接頭辞
		{"1A", 0x1A, true},   // 裸の16進
		{"ff", 0xFF, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"xyz", 0, false},
	}

	for _, test := range tests {
		result, ok := ParseCharacterNumber(test.input)
		if ok != test.ok || result != test.expected {
			t.Errorf("ParseCharacterNumber(%q) = (%d, %v); want (%d, %v)", test.input, result, ok, test.expected, test.ok)
		}
	}
}

func TestCoerceCharacterID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5", "05"},
		{"0x1A", "1A"},
		{"1a", "1A"},
		{"47", "2F"},   // 10進47 = 0x2F（上限ちょうど）
		{"99", "2F"},   // 上限に丸め
		{"0x99", "2F"}, // 上限に丸め
		{"-3", "00"},   // 下限に丸め
		{"", "00"},
		{"xyz", "00"},
	}

	for _, test := range tests {
		result := CoerceCharacterID(test.input)
		if result != test.expected {
			t.Errorf("CoerceCharacterID(%q) = %q; want %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizeCharacterKey(t *testing.T) {
	if key, ok := NormalizeCharacterKey("0x10"); !ok || key != "10" {
		t.Errorf("NormalizeCharacterKey(0x10) = (%q, %v); want (10, true)", key, ok)
	}
	// 範囲外は丸めずに失敗
	if _, ok := NormalizeCharacterKey("0x99"); ok {
		t.Errorf("NormalizeCharacterKey(0x99) should fail")
	}
	if _, ok := NormalizeCharacterKey("bad"); ok {
		t.Errorf("NormalizeCharacterKey(bad) should fail")
	}
}

func TestCharacterDisplayLabel(t *testing.T) {
	if label := CharacterDisplayLabel("0A", "JD"); label != "10 - JD" {
		t.Errorf("CharacterDisplayLabel = %q; want %q", label, "10 - JD")
	}
}

func TestPresetByLabel(t *testing.T) {
	preset, ok := PresetByLabel("basic")
	if !ok {
		t.Fatalf("PresetByLabel(basic) not found")
	}
	if preset.Label != "Basic" {
		t.Errorf("Label = %q; want %q", preset.Label, "Basic")
	}
	if len(preset.Entries) == 0 {
		t.Errorf("Preset has no entries")
	}

	if _, ok := PresetByLabel("no-such-preset"); ok {
		t.Errorf("PresetByLabel should fail for unknown label")
	}
}

func TestPresetEntryRow(t *testing.T) {
	entry := PresetEntry{ActorType: "enemy", CharacterID: "5", Deck: "DECK000"}
	row := entry.Row()
	if len(row) != len(Single2Header) {
		t.Fatalf("Row length = %d; want %d", len(row), len(Single2Header))
	}
	if row[0] != "ENEMY" {
		t.Errorf("actor_type = %q; want %q", row[0], "ENEMY")
	}
	if row[5] != "05" {
		t.Errorf("character_id = %q; want %q", row[5], "05")
	}
}
