package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/starblitz/pkg/types"
)

// ProfileData 玩家档案：货币银行、战绩记录、强化解锁与装备配置
// 局内引擎不触碰档案，终局结果事件经 ApplyOutcome 汇入
type ProfileData struct {
	Currency int `yaml:"currency"` // 货币银行余额

	// 战绩记录（键为难度配置ID）
	BestScore    map[string]int `yaml:"bestScore"`
	DeepestStage map[string]int `yaml:"deepestStage"`

	TotalKills     int      `yaml:"totalKills"`
	TotalBossKills int      `yaml:"totalBossKills"`
	TotalGrazes    int      `yaml:"totalGrazes"`
	Cleared        []string `yaml:"cleared"` // 已通关的难度配置ID

	// Upgrades 武器/法术的已购强化等级（键为武器或法术ID）
	Upgrades map[string]int `yaml:"upgrades"`

	Loadout Loadout `yaml:"loadout"` // 上次使用的装备配置
}

// NewProfileData 返回新玩家档案
func NewProfileData() *ProfileData {
	return &ProfileData{
		BestScore:    make(map[string]int),
		DeepestStage: make(map[string]int),
		Upgrades:     make(map[string]int),
		Loadout:      DefaultLoadout(),
	}
}

// SaveManager 玩家档案管理器
// 与 SettingsManager 同构：gdata 持久化 + YAML 序列化，
// gdataManager 为 nil 时降级为纯内存档案
type SaveManager struct {
	gdataManager *gdata.Manager
	profile      *ProfileData
}

const (
	profileObject   = "profile"
	profileProperty = "default"
)

// 通关奖励倍率：胜利结算时对局内货币的加成
const clearBonusMultiplier = 1.5

// NewSaveManager 创建档案管理器并尝试加载已有档案
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *SaveManager: 档案管理器实例
//   - error: 如果加载档案失败返回错误（不影响创建）
func NewSaveManager(gdataManager *gdata.Manager) (*SaveManager, error) {
	sm := &SaveManager{
		gdataManager: gdataManager,
		profile:      NewProfileData(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load profile: %v (using fresh profile)", err)
	}
	return sm, nil
}

// Load 从 gdata 加载档案，不存在时使用新档案
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	loaded := NewProfileData()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	// 旧档案可能缺少新字段，保证map可用
	if loaded.BestScore == nil {
		loaded.BestScore = make(map[string]int)
	}
	if loaded.DeepestStage == nil {
		loaded.DeepestStage = make(map[string]int)
	}
	if loaded.Upgrades == nil {
		loaded.Upgrades = make(map[string]int)
	}

	sm.profile = loaded
	log.Printf("[SaveManager] Profile loaded (currency=%d)", loaded.Currency)
	return nil
}

// Save 保存档案到 gdata，降级模式下静默成功
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	log.Printf("[SaveManager] Profile saved")
	return nil
}

// Profile 返回当前档案
func (sm *SaveManager) Profile() *ProfileData {
	return sm.profile
}

// ApplyOutcome 将终局结果汇入档案并保存
//
// 货币入账规则：败北按原额入账，通关按通关倍率加成后入账；
// 战绩记录取历史最优。引擎保证结果事件恰好一次，重复汇入
// 的防护由调用方（战斗场景的终局流程）负责
func (sm *SaveManager) ApplyOutcome(difficulty types.Difficulty, outcome *Outcome) {
	if outcome == nil {
		return
	}

	earned := outcome.Currency
	if outcome.Victory {
		earned = int(math.Round(float64(earned) * clearBonusMultiplier))
	}
	sm.profile.Currency += earned

	key := difficulty.String()
	if outcome.Score > sm.profile.BestScore[key] {
		sm.profile.BestScore[key] = outcome.Score
	}
	if outcome.Stats.DeepestStage > sm.profile.DeepestStage[key] {
		sm.profile.DeepestStage[key] = outcome.Stats.DeepestStage
	}
	sm.profile.TotalKills += outcome.Stats.Kills
	sm.profile.TotalBossKills += outcome.Stats.BossKills
	sm.profile.TotalGrazes += outcome.Stats.GrazeCount

	if outcome.Victory && !sm.hasCleared(key) {
		sm.profile.Cleared = append(sm.profile.Cleared, key)
	}

	log.Printf("[SaveManager] Outcome applied: victory=%v earned=%d (bank=%d)",
		outcome.Victory, earned, sm.profile.Currency)
	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to persist outcome: %v", err)
	}
}

// hasCleared 判断指定难度是否已通关
func (sm *SaveManager) hasCleared(key string) bool {
	for _, c := range sm.profile.Cleared {
		if c == key {
			return true
		}
	}
	return false
}

// PurchaseUpgrade 消费货币购买一级强化
//
// 返回：
//   - error: 余额不足或已达上限时返回错误，档案不变
func (sm *SaveManager) PurchaseUpgrade(itemID string, cost int) error {
	current := sm.UpgradeLevel(itemID)
	if current >= types.MaxUpgradeLevel {
		return fmt.Errorf("upgrade %s already at max level %d", itemID, types.MaxUpgradeLevel)
	}
	if sm.profile.Currency < cost {
		return fmt.Errorf("insufficient currency: need %d, have %d", cost, sm.profile.Currency)
	}

	sm.profile.Currency -= cost
	sm.profile.Upgrades[itemID] = current + 1
	log.Printf("[SaveManager] Upgrade purchased: %s -> level %d (bank=%d)",
		itemID, current+1, sm.profile.Currency)
	return sm.Save()
}

// UpgradeLevel 返回指定武器/法术的强化等级（未购买为1级基础档）
func (sm *SaveManager) UpgradeLevel(itemID string) int {
	if lv, ok := sm.profile.Upgrades[itemID]; ok && lv > 0 {
		return types.ClampLevel(lv)
	}
	return 1
}

// SetLoadout 更新档案中的装备配置（需另行 Save 持久化）
func (sm *SaveManager) SetLoadout(l Loadout) {
	sm.profile.Loadout = l
}
