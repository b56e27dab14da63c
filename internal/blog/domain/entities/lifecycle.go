// Package entities содержит основные сущности доменной модели блог-платформы.
package entities

import "time"

// Lifecycle инкапсулирует мягкое удаление сущности. Отметка об удалении
// никогда не сериализуется наружу.
type Lifecycle struct {
	DeletedAt *time.Time `json:"-"`
}

// IsActive сообщает, что сущность не была мягко удалена.
func (lc Lifecycle) IsActive() bool {
	return lc.DeletedAt == nil
}

// MarkDeleted проставляет отметку мягкого удаления.
func (lc *Lifecycle) MarkDeleted(now time.Time) {
	lc.DeletedAt = &now
}
