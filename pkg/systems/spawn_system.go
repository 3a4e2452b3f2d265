package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// SpawnSystem 生成导演系统
//
// 职责：
//   - 按难度与关卡决定常规小怪的刷怪节奏（难度越高、关卡越深越密集）
//   - 维护每关刷新的轮换刷怪池（基础池偏置，第3关起混入精英池）
//   - 触发Boss登场（常规模式按关卡计时阈值，Boss连战模式立即）
//   - 练习模式覆盖：只刷指定目标（小怪连续刷，Boss只刷一次）
//
// 保证：
//   - 同一时刻至多一个Boss在场
//   - Boss在场或关卡间歇期间不刷常规小怪
//   - 刷怪池为空时同步刷新后再选取
type SpawnSystem struct {
	world *entities.World
	cfg   *config.GameConfig
	state *game.BattleState
	rng   *rand.Rand
	audio game.AudioSink

	pool           []types.EnemyType // 轮换刷怪池，逐个弹出
	poolStage      int               // 刷怪池对应的关卡（关卡变化时整池刷新）
	spawnCountdown int               // 距下次小怪生成的帧数
	practiceBossUp bool              // 练习Boss是否已刷出（只刷一次）
}

// NewSpawnSystem 创建生成导演系统
func NewSpawnSystem(world *entities.World, cfg *config.GameConfig, state *game.BattleState, rng *rand.Rand, audio game.AudioSink) *SpawnSystem {
	return &SpawnSystem{world: world, cfg: cfg, state: state, rng: rng, audio: audio}
}

// Update 执行本步进的生成决策
// 关卡计时也在此推进：Boss在场与关卡间歇期间关卡计时暂停
func (s *SpawnSystem) Update() {
	if s.state.Practice.Enabled {
		s.updatePractice()
		return
	}

	// 关卡间歇：只递减间歇计时，不刷怪不计时
	if s.state.StageDelay > 0 {
		s.state.StageDelay--
		return
	}

	if s.state.BossActive {
		return
	}

	if s.state.Mode == types.ModeBossRush {
		// Boss连战：无小怪，间歇结束立即进Boss
		s.spawnBoss()
		return
	}

	s.state.StageFrames++

	stage := s.cfg.Stages.Get(s.state.Stage)
	if s.state.StageFrames >= stage.BossTime {
		s.spawnBoss()
		return
	}

	if s.spawnCountdown > 0 {
		s.spawnCountdown--
		return
	}
	s.spawnCountdown = s.cfg.Difficulty.SpawnIntervalFor(s.state.Difficulty, s.state.Stage)
	s.spawnMob(s.nextFromPool())
}

// updatePractice 练习模式覆盖：只刷指定目标
func (s *SpawnSystem) updatePractice() {
	p := s.state.Practice
	if p.Variant != types.BossNone {
		if !s.practiceBossUp {
			s.spawnPracticeBoss(p.Variant)
			s.practiceBossUp = true
		}
		return
	}

	if s.spawnCountdown > 0 {
		s.spawnCountdown--
		return
	}
	s.spawnCountdown = 90
	s.spawnMob(p.Target)
}

// nextFromPool 从轮换刷怪池弹出下一个类型
// 池为空或关卡已推进时同步刷新后再选取
func (s *SpawnSystem) nextFromPool() types.EnemyType {
	if len(s.pool) == 0 || s.poolStage != s.state.Stage {
		s.refreshPool()
	}
	t := s.pool[0]
	s.pool = s.pool[1:]
	return t
}

// refreshPool 按当前关卡重建刷怪池
// 基础池每型投入两份形成偏置；达到精英关卡阈值后混入精英各一份
func (s *SpawnSystem) refreshPool() {
	stage := s.cfg.Stages.Get(s.state.Stage)
	s.pool = s.pool[:0]
	for _, id := range stage.MobPool {
		t := types.ParseEnemyType(id)
		if t == types.EnemyUnknown {
			log.Printf("[SpawnSystem] Stage %d pool has unknown enemy %q, skipped", s.state.Stage, id)
			continue
		}
		s.pool = append(s.pool, t, t)
	}
	if s.state.Stage >= config.EliteStageThreshold {
		s.pool = append(s.pool, types.EnemyEliteGunner, types.EnemyEliteCharger)
	}
	s.rng.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})
	s.poolStage = s.state.Stage
	log.Printf("[SpawnSystem] Mob pool refreshed for stage %d (%d entries)", s.state.Stage, len(s.pool))
}

// spawnMob 在竞技场上缘随机位置生成一只小怪
func (s *SpawnSystem) spawnMob(t types.EnemyType) {
	if t == types.EnemyUnknown || t.IsBossFamily() {
		return
	}
	stats := s.cfg.Enemies.Get(t)
	hpScale := s.cfg.Difficulty.Get(s.state.Difficulty).HPScale

	x := 40 + s.rng.Float64()*(config.ArenaWidth-80)
	e := entities.NewEnemy(s.world.AllocID(), t, stats, hpScale, x, -30)

	// 蜂群型在生成时锁定玩家方向俯冲
	if t == types.EnemySwarm && s.world.Player != nil {
		p := s.world.Player
		e.VX, e.VY = utils.VelocityToward(e.X, e.Y, p.X, p.Y, stats.Speed)
	}

	s.world.AddEnemy(e)
}

// spawnBoss 按当前关卡配置生成Boss并挂起横幅
func (s *SpawnSystem) spawnBoss() {
	stage := s.cfg.Stages.Get(s.state.Stage)
	variant := types.ParseBossVariant(stage.BossVariant)
	hpScale := s.cfg.Difficulty.Get(s.state.Difficulty).BossHPScale

	boss := entities.NewBoss(s.world.AllocID(), variant, stage.BossHP, hpScale, 5000+s.state.Stage*1000)
	if !s.world.AddEnemy(boss) {
		// Boss槽位被占用（防御：不应发生）
		log.Printf("[SpawnSystem] Boss slot occupied, spawn of %s dropped", variant)
		return
	}

	s.state.BossActive = true
	s.state.BossBanner = variant.BannerName()
	s.state.Dialogue = stage.Dialogue
	s.state.BannerLeft = 270
	s.audio.Play(types.CueBossBanner)
	log.Printf("[SpawnSystem] Boss %s spawned for stage %d (hp=%d)", variant, s.state.Stage, boss.MaxHP)
}

// spawnPracticeBoss 练习模式生成指定变体的Boss（无关卡推进语义）
func (s *SpawnSystem) spawnPracticeBoss(variant types.BossVariant) {
	// 从关卡表反查该变体对应的基础生命
	bossHP := 5000
	for st := 1; st <= len(s.cfg.Stages.Stages); st++ {
		if s.cfg.Stages.BossVariantFor(st) == variant {
			bossHP = s.cfg.Stages.Get(st).BossHP
			break
		}
	}
	hpScale := s.cfg.Difficulty.Get(s.state.Difficulty).BossHPScale
	boss := entities.NewBoss(s.world.AllocID(), variant, bossHP, hpScale, 5000)
	if s.world.AddEnemy(boss) {
		s.state.BossActive = true
		s.state.BossBanner = variant.BannerName()
		s.state.BannerLeft = 270
		s.audio.Play(types.CueBossBanner)
	}
}
