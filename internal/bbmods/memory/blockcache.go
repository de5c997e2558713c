package memory

// BlockInfo は解決済みメモリブロックの位置情報を表します
type BlockInfo struct {
	Address uint64
	Length  int
	Label   string
}

// BlockCache はスキルブロックの解決済みアドレスを保持する明示的なキャッシュです。
// キー単位のInvalidateと全消去のみを操作として持ちます。
type BlockCache struct {
	blocks map[string]BlockInfo
}

// NewBlockCache は空のキャッシュを作成します
func NewBlockCache() *BlockCache {
	return &BlockCache{blocks: make(map[string]BlockInfo)}
}

// Get はキーに対応するブロック情報を返します
func (c *BlockCache) Get(key string) (BlockInfo, bool) {
	info, ok := c.blocks[key]
	return info, ok
}

// Put はブロック情報を登録します
func (c *BlockCache) Put(key string, info BlockInfo) {
	c.blocks[key] = info
}

// Invalidate は指定キーのブロック情報を破棄します
func (c *BlockCache) Invalidate(key string) {
	delete(c.blocks, key)
}

// Clear は全ブロック情報を破棄します
func (c *BlockCache) Clear() {
	c.blocks = make(map[string]BlockInfo)
}

// Len は登録済みブロック数を返します
func (c *BlockCache) Len() int {
	return len(c.blocks)
}
