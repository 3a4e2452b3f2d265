package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/starblitz/pkg/types"
)

// WeaponLevel 单个强化等级下的武器数值
// 不同武器只使用与自己行为相关的字段，未用字段保持零值
type WeaponLevel struct {
	Damage       float64 `yaml:"damage"`       // 单发伤害
	FireInterval int     `yaml:"fireInterval"` // 发射间隔（帧），对全局帧计数取模
	Speed        float64 `yaml:"speed"`        // 弹丸速度（像素/步）
	Count        int     `yaml:"count"`        // 同时发射的弹丸数
	SpreadDeg    float64 `yaml:"spreadDeg"`    // 扇形散布角（度）
	Pierce       int     `yaml:"pierce"`       // 穿透预算（0 = 不穿透，-1 = 无限穿透）
	ChainJumps   int     `yaml:"chainJumps"`   // 链式跳跃预算
	ChainRange   float64 `yaml:"chainRange"`   // 链式跳跃搜索半径
	SplashRadius float64 `yaml:"splashRadius"` // 溅射半径
	SplashChain  int     `yaml:"splashChain"`  // 溅射链式爆发层数
	MineHP       int     `yaml:"mineHp"`       // 水雷耐久
	MineShards   int     `yaml:"mineShards"`   // 水雷引爆时放出的破片数
	OrbitRadius  float64 `yaml:"orbitRadius"`  // 环绕半径
	OrbitSpeed   float64 `yaml:"orbitSpeed"`   // 环绕角速度（弧度/步）
	Lifetime     int     `yaml:"lifetime"`     // 弹丸寿命（帧），0 使用默认值
}

// WeaponEntry 单个武器的完整配置（3个强化等级）
type WeaponEntry struct {
	Name   string        `yaml:"name"`   // 展示名称
	Levels []WeaponLevel `yaml:"levels"` // 等级1~3的数值，索引 = 等级-1
}

// WeaponsConfig 武器配置表
type WeaponsConfig struct {
	Weapons map[string]WeaponEntry `yaml:"weapons"`
}

// LoadWeaponsConfig 从文件系统加载武器配置
func LoadWeaponsConfig(fsys fs.FS, path string) (*WeaponsConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapons config: %w", err)
	}

	var cfg WeaponsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weapons YAML: %w", err)
	}

	if err := validateWeaponsConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid weapons config: %w", err)
	}

	return &cfg, nil
}

// validateWeaponsConfig 验证武器配置的有效性
func validateWeaponsConfig(cfg *WeaponsConfig) error {
	if len(cfg.Weapons) == 0 {
		return fmt.Errorf("weapons cannot be empty")
	}
	for id, w := range cfg.Weapons {
		if len(w.Levels) != types.MaxUpgradeLevel {
			return fmt.Errorf("weapon %s: expected %d levels, got %d", id, types.MaxUpgradeLevel, len(w.Levels))
		}
		for i, lv := range w.Levels {
			if lv.Damage < 0 {
				return fmt.Errorf("weapon %s level %d: damage must be >= 0", id, i+1)
			}
			if lv.FireInterval <= 0 {
				return fmt.Errorf("weapon %s level %d: fireInterval must be > 0", id, i+1)
			}
		}
	}
	return nil
}

// Level 返回指定武器在指定等级下的数值
// 等级越界时收拢到合法区间；未知武器ID返回零值和 false
func (c *WeaponsConfig) Level(weaponID string, level int) (WeaponLevel, bool) {
	w, ok := c.Weapons[weaponID]
	if !ok {
		return WeaponLevel{}, false
	}
	return w.Levels[types.ClampLevel(level)-1], true
}

// SpellLevel 单个强化等级下的法术数值
type SpellLevel struct {
	Cooldown int     `yaml:"cooldown"` // 冷却（帧）
	Power    float64 `yaml:"power"`    // 效果强度（伤害/回复量/护盾点数）
	Duration int     `yaml:"duration"` // 持续时间（帧），瞬发法术为 0
	Radius   float64 `yaml:"radius"`   // 作用半径，全场法术为 0
}

// SpellEntry 单个法术的完整配置
type SpellEntry struct {
	Name   string       `yaml:"name"`
	Levels []SpellLevel `yaml:"levels"`
}

// SpellsConfig 法术配置表
type SpellsConfig struct {
	Spells map[string]SpellEntry `yaml:"spells"`
}

// LoadSpellsConfig 从文件系统加载法术配置
func LoadSpellsConfig(fsys fs.FS, path string) (*SpellsConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spells config: %w", err)
	}

	var cfg SpellsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse spells YAML: %w", err)
	}

	for id, s := range cfg.Spells {
		if len(s.Levels) != types.MaxUpgradeLevel {
			return nil, fmt.Errorf("invalid spells config: spell %s expected %d levels, got %d",
				id, types.MaxUpgradeLevel, len(s.Levels))
		}
		for i, lv := range s.Levels {
			if lv.Cooldown <= 0 {
				return nil, fmt.Errorf("invalid spells config: spell %s level %d cooldown must be > 0", id, i+1)
			}
		}
	}

	return &cfg, nil
}

// Level 返回指定法术在指定等级下的数值
func (c *SpellsConfig) Level(spellID string, level int) (SpellLevel, bool) {
	s, ok := c.Spells[spellID]
	if !ok {
		return SpellLevel{}, false
	}
	return s.Levels[types.ClampLevel(level)-1], true
}
