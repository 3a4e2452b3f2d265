package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/starblitz/pkg/types"
)

// DifficultyEntry 单个难度档位的数值配置
type DifficultyEntry struct {
	HPScale        float64 `yaml:"hpScale"`        // 敌机生命倍率
	SpawnInterval  int     `yaml:"spawnInterval"`  // 第1关的基础刷怪间隔（帧）
	SpawnFloor     int     `yaml:"spawnFloor"`     // 刷怪间隔的下限（帧）
	StageStep      int     `yaml:"stageStep"`      // 每进一关刷怪间隔缩短的帧数
	LootMultiplier float64 `yaml:"lootMultiplier"` // 货币掉落倍率
	BossHPScale    float64 `yaml:"bossHpScale"`    // Boss生命倍率
}

// DifficultyConfig 难度配置表
type DifficultyConfig struct {
	Difficulties map[string]DifficultyEntry `yaml:"difficulties"`
}

// LoadDifficultyConfig 从文件系统加载难度配置
func LoadDifficultyConfig(fsys fs.FS, path string) (*DifficultyConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty config: %w", err)
	}

	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}

	if err := validateDifficultyConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return &cfg, nil
}

// validateDifficultyConfig 验证难度配置的有效性
func validateDifficultyConfig(cfg *DifficultyConfig) error {
	if len(cfg.Difficulties) == 0 {
		return fmt.Errorf("difficulties cannot be empty")
	}
	for id, e := range cfg.Difficulties {
		if e.HPScale <= 0 {
			return fmt.Errorf("difficulty %s: hpScale must be > 0, got %f", id, e.HPScale)
		}
		if e.SpawnInterval <= 0 {
			return fmt.Errorf("difficulty %s: spawnInterval must be > 0, got %d", id, e.SpawnInterval)
		}
		if e.SpawnFloor <= 0 || e.SpawnFloor > e.SpawnInterval {
			return fmt.Errorf("difficulty %s: spawnFloor must be in (0, spawnInterval], got %d", id, e.SpawnFloor)
		}
		if e.LootMultiplier < 0 {
			return fmt.Errorf("difficulty %s: lootMultiplier must be >= 0, got %f", id, e.LootMultiplier)
		}
	}
	return nil
}

// Get 返回指定难度的配置，未配置的难度回退到 normal
func (c *DifficultyConfig) Get(d types.Difficulty) DifficultyEntry {
	if e, ok := c.Difficulties[d.String()]; ok {
		return e
	}
	return c.Difficulties["normal"]
}

// SpawnIntervalFor 计算指定难度、指定关卡的刷怪间隔（帧）
// 关卡越深间隔越短，收拢到 SpawnFloor 下限
func (c *DifficultyConfig) SpawnIntervalFor(d types.Difficulty, stage int) int {
	e := c.Get(d)
	interval := e.SpawnInterval - (stage-1)*e.StageStep
	if interval < e.SpawnFloor {
		return e.SpawnFloor
	}
	return interval
}
