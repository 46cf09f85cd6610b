package component

// Countdown — счётчик тиков перезарядки. Новый счётчик сразу готов.
type Countdown struct {
	Steps     int
	remaining int
}

// NewCountdown создаёт готовый счётчик на steps тиков
func NewCountdown(steps int) Countdown {
	return Countdown{Steps: steps}
}

// Step уменьшает остаток на один тик
func (c *Countdown) Step() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// IsDone — перезарядка закончилась
func (c *Countdown) IsDone() bool {
	return c.remaining == 0
}

// Start запускает перезарядку заново
func (c *Countdown) Start() {
	c.remaining = c.Steps
}

// Remaining — сколько тиков осталось
func (c *Countdown) Remaining() int {
	return c.remaining
}
