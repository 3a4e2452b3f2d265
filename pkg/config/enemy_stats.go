package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/starblitz/pkg/types"
)

// EnemyStatsEntry 单个敌机类型的基础数值
// 生命值在生成时乘以难度倍率；Boss的生命由 StageConfig 单独给定
type EnemyStatsEntry struct {
	HP           int     `yaml:"hp"`           // 基础生命值
	Speed        float64 `yaml:"speed"`        // 基础移动速度（像素/步）
	Score        int     `yaml:"score"`        // 击破分数
	Radius       float64 `yaml:"radius"`       // 碰撞半径
	FireInterval int     `yaml:"fireInterval"` // 射击间隔（帧），0 = 不射击
	ShotSpeed    float64 `yaml:"shotSpeed"`    // 敌弹速度
	ShotDamage   int     `yaml:"shotDamage"`   // 敌弹伤害
	ContactDamage int    `yaml:"contactDamage"` // 碰撞伤害
	Shield       int     `yaml:"shield"`       // 初始护盾点数（仅护盾机）
	ChargeFrames int     `yaml:"chargeFrames"` // 精英蓄力阈值（帧）
	BurstCount   int     `yaml:"burstCount"`   // 精英蓄力满后的连射数
}

// EnemyStatsConfig 敌机数值配置表，键为敌机类型的字符串ID
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStatsEntry `yaml:"enemies"`
}

// LoadEnemyStats 从文件系统加载敌机数值配置
func LoadEnemyStats(fsys fs.FS, path string) (*EnemyStatsConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats: %w", err)
	}

	var cfg EnemyStatsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML: %w", err)
	}

	if len(cfg.Enemies) == 0 {
		return nil, fmt.Errorf("invalid enemy stats: enemies cannot be empty")
	}
	for id, e := range cfg.Enemies {
		if types.ParseEnemyType(id) == types.EnemyUnknown {
			return nil, fmt.Errorf("invalid enemy stats: unknown enemy type %q", id)
		}
		if e.HP <= 0 {
			return nil, fmt.Errorf("invalid enemy stats: %s hp must be > 0, got %d", id, e.HP)
		}
		if e.Radius <= 0 {
			return nil, fmt.Errorf("invalid enemy stats: %s radius must be > 0", id)
		}
	}

	return &cfg, nil
}

// Get 返回指定敌机类型的数值
// 未配置的类型返回保底数值（低血量无人机档），避免生成失败
func (c *EnemyStatsConfig) Get(t types.EnemyType) EnemyStatsEntry {
	if e, ok := c.Enemies[t.String()]; ok {
		return e
	}
	return EnemyStatsEntry{HP: 10, Speed: 1.0, Score: 50, Radius: 12, ContactDamage: 10}
}
