// pkg/grid/pathfinding.go
package grid

import "errors"

// ErrNotPathable — клетки нет в поле потока: из неё не дойти до цели.
var ErrNotPathable = errors.New("grid: cell is not pathable")

// FlowField хранит для каждой достижимой клетки шаг в сторону цели.
// Клетки, недостижимые из цели, в поле отсутствуют.
type FlowField struct {
	Goal      Cell
	Deltas    map[Cell]Cell
	Distances map[Cell]int
}

// computeFlowField — обратный BFS от цели по проходимым клеткам.
// Каждая найденная клетка запоминает смещение к соседу, который её открыл.
func computeFlowField(goal Cell, outward Cell, pathable func(Cell) bool) *FlowField {
	ff := &FlowField{
		Goal:      goal,
		Deltas:    make(map[Cell]Cell),
		Distances: make(map[Cell]int),
	}
	if !pathable(goal) {
		return ff
	}

	ff.Deltas[goal] = outward
	ff.Distances[goal] = 0

	queue := []Cell{goal}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range current.Neighbors() {
			if _, seen := ff.Deltas[neighbor]; seen {
				continue
			}
			if !pathable(neighbor) {
				continue
			}
			ff.Deltas[neighbor] = current.Subtract(neighbor)
			ff.Distances[neighbor] = ff.Distances[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return ff
}

// Contains сообщает, есть ли у клетки направление в поле
func (ff *FlowField) Contains(c Cell) bool {
	if ff == nil {
		return false
	}
	_, ok := ff.Deltas[c]
	return ok
}

// GetBestDelta возвращает шаг к цели для клетки или ErrNotPathable
func (ff *FlowField) GetBestDelta(c Cell) (Cell, error) {
	if ff == nil {
		return Cell{}, ErrNotPathable
	}
	d, ok := ff.Deltas[c]
	if !ok {
		return Cell{}, ErrNotPathable
	}
	return d, nil
}

// Distance — число шагов BFS до цели; -1 если клетка недостижима
func (ff *FlowField) Distance(c Cell) int {
	if ff == nil {
		return -1
	}
	d, ok := ff.Distances[c]
	if !ok {
		return -1
	}
	return d
}

// Len — количество клеток в поле
func (ff *FlowField) Len() int {
	if ff == nil {
		return 0
	}
	return len(ff.Deltas)
}

// GetShortest восстанавливает путь от from до цели, следуя полю.
// Для клетки вне поля возвращает nil.
func (ff *FlowField) GetShortest(from Cell) []Cell {
	if !ff.Contains(from) {
		return nil
	}
	path := []Cell{from}
	current := from
	for current != ff.Goal && len(path) <= len(ff.Deltas) {
		current = current.Add(ff.Deltas[current])
		path = append(path, current)
	}
	return path
}
