// internal/event/types.go
package event

const (
	EnemiesDied    EventType = "EnemiesDied"    // []*component.Enemy, убитые за тик
	EnemiesEscaped EventType = "EnemiesEscaped" // []*component.Enemy, прорвавшиеся за тик
	WaveCleared    EventType = "WaveCleared"    // int, номер волны
	GameOver       EventType = "GameOver"       // bool, победа
	TowerPlaced    EventType = "TowerPlaced"    // *component.Tower
	TowerRemoved   EventType = "TowerRemoved"   // *component.Tower
	TowerUpgraded  EventType = "TowerUpgraded"  // *component.Tower
	WaveStarted    EventType = "WaveStarted"    // int, номер волны
)
