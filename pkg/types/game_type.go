package types

// Difficulty 定义难度枚举
// 难度影响刷怪间隔、敌机生命倍率和战利品倍率（见 data/difficulty.yaml）
type Difficulty int

const (
	// DifficultyEasy 简单
	DifficultyEasy Difficulty = iota
	// DifficultyNormal 普通
	DifficultyNormal
	// DifficultyHard 困难
	DifficultyHard
	// DifficultyLunatic 狂热
	DifficultyLunatic
	// DifficultyEndless 无尽：不存在通关判定，Boss击破后继续推进关卡
	DifficultyEndless
)

// String 返回难度的配置ID
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	case DifficultyLunatic:
		return "lunatic"
	case DifficultyEndless:
		return "endless"
	default:
		return "normal"
	}
}

// IsEndless 判断是否为无尽模式难度
// 无尽模式下最终关Boss击破不触发胜利事件
func (d Difficulty) IsEndless() bool {
	return d == DifficultyEndless
}

// GameMode 定义游戏模式
type GameMode int

const (
	// ModeNormal 常规模式：小怪+Boss按关卡推进
	ModeNormal GameMode = iota
	// ModeBossRush Boss连战模式：无小怪，Boss接连登场
	ModeBossRush
	// ModePractice 练习模式：只刷指定目标，不计局外奖励
	ModePractice
)

// String 返回游戏模式的可读名称
func (m GameMode) String() string {
	switch m {
	case ModeBossRush:
		return "boss_rush"
	case ModePractice:
		return "practice"
	default:
		return "normal"
	}
}

// AudioCue 定义引擎向外发出的音频提示
// 引擎只负责通知，播放由 game.AudioManager 消费，无返回值
type AudioCue int

const (
	// CueShoot 玩家开火
	CueShoot AudioCue = iota
	// CueExplosion 敌机爆炸
	CueExplosion
	// CueSpell 法术释放
	CueSpell
	// CueBattleStart 战斗开始
	CueBattleStart
	// CueBossBanner Boss登场横幅
	CueBossBanner
	// CuePlayerHit 玩家受击
	CuePlayerHit
	// CueGraze 擦弹
	CueGraze
)
