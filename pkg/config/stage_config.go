package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/starblitz/pkg/types"
)

// StageEntry 单个关卡的配置
type StageEntry struct {
	Stage       int      `yaml:"stage"`       // 关卡号，从1开始
	BossVariant string   `yaml:"bossVariant"` // 本关Boss变体ID
	BossHP      int      `yaml:"bossHp"`      // Boss基础生命值（乘以难度倍率）
	BossTime    int      `yaml:"bossTime"`    // 常规模式下Boss登场的关卡计时阈值（帧）
	MobPool     []string `yaml:"mobPool"`     // 本关刷怪池的基础构成
	Dialogue    string   `yaml:"dialogue"`    // Boss登场台词（HUD展示用）
}

// StagesConfig 关卡配置表
// 无尽模式下超出表长的关卡循环使用最后一项并持续叠加难度
type StagesConfig struct {
	Stages []StageEntry `yaml:"stages"`
}

// LoadStagesConfig 从文件系统加载关卡配置
func LoadStagesConfig(fsys fs.FS, path string) (*StagesConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stages config: %w", err)
	}

	var cfg StagesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stages YAML: %w", err)
	}

	if len(cfg.Stages) == 0 {
		return nil, fmt.Errorf("invalid stages config: stages cannot be empty")
	}
	for i, s := range cfg.Stages {
		if s.Stage != i+1 {
			return nil, fmt.Errorf("invalid stages config: stage %d out of order (index %d)", s.Stage, i)
		}
		if types.ParseBossVariant(s.BossVariant) == types.BossNone {
			return nil, fmt.Errorf("invalid stages config: stage %d unknown boss variant %q", s.Stage, s.BossVariant)
		}
		if s.BossHP <= 0 {
			return nil, fmt.Errorf("invalid stages config: stage %d bossHp must be > 0", s.Stage)
		}
		if s.BossTime <= 0 {
			return nil, fmt.Errorf("invalid stages config: stage %d bossTime must be > 0", s.Stage)
		}
		if len(s.MobPool) == 0 {
			return nil, fmt.Errorf("invalid stages config: stage %d mobPool cannot be empty", s.Stage)
		}
		for _, id := range s.MobPool {
			t := types.ParseEnemyType(id)
			if t == types.EnemyUnknown || t.IsBossFamily() {
				return nil, fmt.Errorf("invalid stages config: stage %d mobPool has invalid entry %q", s.Stage, id)
			}
		}
	}

	return &cfg, nil
}

// Get 返回指定关卡的配置
// 超出配置表的关卡（无尽模式）复用最后一关的配置
func (c *StagesConfig) Get(stage int) StageEntry {
	if stage < 1 {
		stage = 1
	}
	if stage > len(c.Stages) {
		return c.Stages[len(c.Stages)-1]
	}
	return c.Stages[stage-1]
}

// BossVariantFor 返回指定关卡的Boss变体
func (c *StagesConfig) BossVariantFor(stage int) types.BossVariant {
	return types.ParseBossVariant(c.Get(stage).BossVariant)
}
