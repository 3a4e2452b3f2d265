package config

import (
	"fmt"
	"io/fs"
)

// GameConfig 汇总全部数据驱动配置
// 由 main 在启动时加载一次，之后以只读方式注入各系统
type GameConfig struct {
	Difficulty *DifficultyConfig
	Weapons    *WeaponsConfig
	Spells     *SpellsConfig
	Enemies    *EnemyStatsConfig
	Stages     *StagesConfig
}

// LoadAll 从文件系统加载全部配置
//
// 参数：
//   - fsys: 配置所在的文件系统（通常是根目录嵌入的 dataFS）
//
// 任一配置加载失败即整体失败，不做部分加载
func LoadAll(fsys fs.FS) (*GameConfig, error) {
	difficulty, err := LoadDifficultyConfig(fsys, "data/difficulty.yaml")
	if err != nil {
		return nil, fmt.Errorf("load difficulty: %w", err)
	}
	weapons, err := LoadWeaponsConfig(fsys, "data/weapons.yaml")
	if err != nil {
		return nil, fmt.Errorf("load weapons: %w", err)
	}
	spells, err := LoadSpellsConfig(fsys, "data/spells.yaml")
	if err != nil {
		return nil, fmt.Errorf("load spells: %w", err)
	}
	enemies, err := LoadEnemyStats(fsys, "data/enemy_stats.yaml")
	if err != nil {
		return nil, fmt.Errorf("load enemy stats: %w", err)
	}
	stages, err := LoadStagesConfig(fsys, "data/stages.yaml")
	if err != nil {
		return nil, fmt.Errorf("load stages: %w", err)
	}

	return &GameConfig{
		Difficulty: difficulty,
		Weapons:    weapons,
		Spells:     spells,
		Enemies:    enemies,
		Stages:     stages,
	}, nil
}
