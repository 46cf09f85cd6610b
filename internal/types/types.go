// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности. Выдаётся ECS монотонно и никогда
// не переиспользуется, поэтому годится как «слабая ссылка» на врага: если по ID
// ничего не находится, значит цель исчезла.
type EntityID uint64

// NoEntity — нулевой ID, «цели нет».
const NoEntity EntityID = 0
