package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockCache(t *testing.T) {
	cache := NewBlockCache()
	assert.Equal(t, 0, cache.Len())

	info := BlockInfo{Address: 0x1000, Length: SkillBlockSize, Label: "0x0001"}
	cache.Put("0x0001", info)

	got, ok := cache.Get("0x0001")
	assert.True(t, ok)
	assert.Equal(t, info, got)

	// キー単位の破棄
	cache.Put("0x0002", BlockInfo{Address: 0x2000})
	cache.Invalidate("0x0001")
	_, ok = cache.Get("0x0001")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	// 全破棄
	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}
