package defs

// PhaseDefinition описывает одну под-волну: Count врагов равномерно за Steps тиков.
// Count == 0 — чистая пауза длиной Steps.
type PhaseDefinition struct {
	Steps int       `yaml:"steps"`
	Count int       `yaml:"count"`
	Enemy EnemyKind `yaml:"enemy"`
}

// WaveDefinition описывает волну как последовательность под-волн.
type WaveDefinition struct {
	Phases []PhaseDefinition `yaml:"phases"`
}
