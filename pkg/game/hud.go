package game

// HUDSnapshot 每步进发布一次的只读HUD快照
// 渲染层按快照绘制，不直接触碰世界状态
type HUDSnapshot struct {
	HP      int
	MaxHP   int
	Shield  int
	Revives int

	Score    int
	Currency int
	Stage    int

	SpellReady []bool // 与装备顺序一致的法术就绪标记

	BossActive bool
	BossName   string  // Boss横幅名称，空 = 无横幅
	Dialogue   string  // Boss登场台词
	BossHPFrac float64 // Boss生命比例 [0,1]

	TimeWarp bool
	Paused   bool
	Finished bool
}
