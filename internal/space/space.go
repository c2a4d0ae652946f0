package space

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("space not found")

// DefaultName is the label given to a space created on the self-healing path.
const DefaultName = "Minha Carteira"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Space is the household/workspace every domain entity belongs to. It is the
// unit of sharing: all members see the same bills, transactions and goals.
type Space struct {
	ID         uuid.UUID
	Name       string
	OwnerID    uuid.UUID
	InviteCode string
	CreatedAt  time.Time
}

type Member struct {
	SpaceID   uuid.UUID
	UserID    uuid.UUID
	Role      string
	CreatedAt time.Time
}

// JoinResult is the outcome of the join_space_by_code database function.
type JoinResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
