package level

import (
	"fmt"
	"os"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/system"

	"gopkg.in/yaml.v3"
)

// File — уровень, загруженный из YAML:
//
//	waves:
//	  - phases:
//	      - {steps: 50, count: 10, enemy: simple}
//	      - {steps: 100}
type File struct {
	Waves []defs.WaveDefinition `yaml:"waves"`
}

// Load читает уровень из файла и проверяет виды врагов
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if len(f.Waves) == 0 {
		return nil, fmt.Errorf("level %s has no waves", path)
	}
	for i, w := range f.Waves {
		for _, p := range w.Phases {
			if p.Count < 0 || p.Steps < 0 {
				return nil, fmt.Errorf("wave %d: negative steps or count", i+1)
			}
			if p.Count == 0 {
				continue
			}
			if _, ok := defs.EnemyLibrary[p.Enemy]; !ok {
				return nil, fmt.Errorf("wave %d: unknown enemy kind %q", i+1, p.Enemy)
			}
		}
	}
	return &f, nil
}

func (f *File) MaxWave() int { return len(f.Waves) }

func (f *File) Wave(n int) []system.Spawn {
	if n < 1 || n > len(f.Waves) {
		return nil
	}
	phases := make([]system.Phase, 0, len(f.Waves[n-1].Phases))
	for _, p := range f.Waves[n-1].Phases {
		phases = append(phases, system.Phase{Steps: p.Steps, Count: p.Count, Enemy: p.Enemy})
	}
	return system.GenerateSubWaves(phases)
}

// Open возвращает уровень из файла или Classic, если путь пуст
func Open(path string) (Level, error) {
	if path == "" {
		return Classic{}, nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
