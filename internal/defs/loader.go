// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TowerOverride — поля башни, которые можно переопределить из файла
type TowerOverride struct {
	CooldownSteps *int `yaml:"cooldown_steps"`
	BaseDamage    *int `yaml:"base_damage"`
	BaseCost      *int `yaml:"base_cost"`
	LevelCost     *int `yaml:"level_cost"`
}

// EnemyOverride — поля врага, которые можно переопределить из файла
type EnemyOverride struct {
	GridSpeed  *float64     `yaml:"grid_speed"`
	Health     *int         `yaml:"health"`
	Points     *int         `yaml:"points"`
	LiveDamage *int         `yaml:"live_damage"`
	Immune     []DamageKind `yaml:"immune"`
}

// Overrides — содержимое файла балансировки
type Overrides struct {
	Towers  map[TowerKind]TowerOverride `yaml:"towers"`
	Enemies map[EnemyKind]EnemyOverride `yaml:"enemies"`
}

// LoadOverrides reads a balance file and applies it on top of the built-in libraries.
func LoadOverrides(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(file, &o); err != nil {
		return fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	return o.Apply()
}

// Apply переписывает библиотеки. Неизвестный вид — ошибка, библиотеки при этом не меняются.
func (o Overrides) Apply() error {
	for kind := range o.Towers {
		if _, ok := TowerLibrary[kind]; !ok {
			return fmt.Errorf("unknown tower kind %q", kind)
		}
	}
	for kind := range o.Enemies {
		if _, ok := EnemyLibrary[kind]; !ok {
			return fmt.Errorf("unknown enemy kind %q", kind)
		}
	}

	for kind, ov := range o.Towers {
		def := TowerLibrary[kind]
		setInt(&def.CooldownSteps, ov.CooldownSteps)
		setInt(&def.BaseDamage, ov.BaseDamage)
		setInt(&def.BaseCost, ov.BaseCost)
		setInt(&def.LevelCost, ov.LevelCost)
		TowerLibrary[kind] = def
	}
	for kind, ov := range o.Enemies {
		def := EnemyLibrary[kind]
		if ov.GridSpeed != nil {
			def.GridSpeed = *ov.GridSpeed
		}
		setInt(&def.Health, ov.Health)
		setInt(&def.Points, ov.Points)
		setInt(&def.LiveDamage, ov.LiveDamage)
		if ov.Immune != nil {
			def.Immune = append([]DamageKind(nil), ov.Immune...)
		}
		EnemyLibrary[kind] = def
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
