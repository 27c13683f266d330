package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя, определяет права на мутации
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// Tier - уровень подписки на уведомления об инцидентах
type Tier string

const (
	Tier1 Tier = "tier1" // все инциденты
	Tier2 Tier = "tier2" // только категория security
	Tier3 Tier = "tier3" // только impact catastrophic
)

type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Function    string    `json:"function"`
	Role        Role      `json:"role"`
	Tier        Tier      `json:"tier"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
