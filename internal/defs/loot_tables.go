// internal/defs/loot_tables.go
package defs

// BuildEntry представляет одну запись в таблице постройки автоигрока.
// Tower — вид башни, а Weight — её "вес" или относительный шанс выбора.
type BuildEntry struct {
	Tower  TowerKind `yaml:"tower"`
	Weight int       `yaml:"weight"`
}

// BuildTable определяет список башен, из которых автоигрок выбирает,
// начиная с определённой волны.
type BuildTable struct {
	FromWave int          `yaml:"from_wave"`
	Entries  []BuildEntry `yaml:"entries"`
}

// BuildTables отсортированы по FromWave
var BuildTables = []BuildTable{
	{FromWave: 1, Entries: []BuildEntry{
		{Tower: TowerSimple, Weight: 50},
		{Tower: TowerGun, Weight: 30},
		{Tower: TowerPulse, Weight: 20},
	}},
	{FromWave: 4, Entries: []BuildEntry{
		{Tower: TowerGun, Weight: 30},
		{Tower: TowerPulse, Weight: 25},
		{Tower: TowerInferno, Weight: 20},
		{Tower: TowerMissile, Weight: 15},
		{Tower: TowerSlow, Weight: 10},
	}},
	{FromWave: 10, Entries: []BuildEntry{
		{Tower: TowerInferno, Weight: 30},
		{Tower: TowerMissile, Weight: 25},
		{Tower: TowerPulse, Weight: 20},
		{Tower: TowerLaser, Weight: 15},
		{Tower: TowerSlow, Weight: 10},
	}},
}

// BuildTableFor возвращает таблицу для волны: последнюю с FromWave <= wave
func BuildTableFor(wave int) BuildTable {
	table := BuildTables[0]
	for _, t := range BuildTables {
		if t.FromWave <= wave {
			table = t
		}
	}
	return table
}
