package game

import (
	"log"

	"github.com/gonewx/starblitz/pkg/types"
)

// Stats 单局会话统计，终局时随结果事件交给局外进度系统
type Stats struct {
	Kills        int // 击破小怪数
	BossKills    int // 击破Boss数
	ShotsFired   int // 发射弹丸总数
	GrazeCount   int // 擦弹次数
	DeepestStage int // 到达的最深关卡
}

// Outcome 终局结果事件
// 引擎保证每局恰好发出一次；1.5倍通关奖励由局外进度层叠加，不在此处
type Outcome struct {
	Victory  bool
	Score    int
	Currency int
	Stats    Stats
}

// BattleState 跨系统共享的单局状态
// 由 Battle（模拟时钟）创建并独占写入，渲染层只读
type BattleState struct {
	Mode       types.GameMode
	Difficulty types.Difficulty
	Boosts     Boosts
	Practice   PracticeSpec

	Tick        int // 全局步进计数，武器节奏对其取模
	Stage       int // 当前关卡，从1开始
	StageFrames int // 当前关卡的累计帧数
	StageDelay  int // 关卡间歇剩余帧数，>0 期间不刷怪

	BossActive bool
	BossBanner string // Boss登场横幅文本
	Dialogue   string // Boss登场台词
	BannerLeft int    // 横幅剩余展示帧数

	TimeWarp bool // 时间迟滞增益生效中（敌方时间减半）

	Score    int
	Currency int
	Stats    Stats

	Finished bool
	Outcome  *Outcome
}

// NewBattleState 创建单局初始状态
func NewBattleState(mode types.GameMode, difficulty types.Difficulty, boosts Boosts, practice PracticeSpec) *BattleState {
	boosts.Normalize()
	return &BattleState{
		Mode:       mode,
		Difficulty: difficulty,
		Boosts:     boosts,
		Practice:   practice,
		Stage:      1,
		Stats:      Stats{DeepestStage: 1},
	}
}

// AddScore 累加分数
func (s *BattleState) AddScore(points int) {
	s.Score += points
}

// AddCurrency 累加货币（练习模式不产出货币）
func (s *BattleState) AddCurrency(amount int) {
	if s.Mode == types.ModePractice {
		return
	}
	s.Currency += amount
}

// EnemyTickActive 返回本步进敌方逻辑是否推进
// 时间迟滞生效时敌方每两步只推进一步，实现子弹时间效果；
// 玩家与玩家弹丸不受影响
func (s *BattleState) EnemyTickActive() bool {
	if !s.TimeWarp {
		return true
	}
	return s.Tick%2 == 0
}

// AdvanceStage 推进到下一关并进入关卡间歇
func (s *BattleState) AdvanceStage(delayFrames int) {
	s.Stage++
	s.StageFrames = 0
	s.StageDelay = delayFrames
	if s.Stage > s.Stats.DeepestStage {
		s.Stats.DeepestStage = s.Stage
	}
	log.Printf("[BattleState] Stage advanced to %d (delay=%d frames)", s.Stage, delayFrames)
}

// Finish 发出终局结果事件
// 幂等保护：已结束的对局重复调用被忽略，保证事件恰好一次
func (s *BattleState) Finish(victory bool) {
	if s.Finished {
		log.Printf("[BattleState] Finish called twice (victory=%v), ignored", victory)
		return
	}
	s.Finished = true
	s.Outcome = &Outcome{
		Victory:  victory,
		Score:    s.Score,
		Currency: s.Currency,
		Stats:    s.Stats,
	}
	log.Printf("[BattleState] Battle finished: victory=%v score=%d currency=%d stage=%d",
		victory, s.Score, s.Currency, s.Stats.DeepestStage)
}
