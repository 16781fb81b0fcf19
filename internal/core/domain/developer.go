package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFrontend  Role = "Frontend"
	RoleBackend   Role = "Backend"
	RoleFullStack Role = "Full-Stack"
	RoleDevOps    Role = "DevOps"
	RoleMobile    Role = "Mobile"
)

// Roles lists every valid developer role. "All" is a query sentinel,
// never a stored value.
var Roles = []Role{RoleFrontend, RoleBackend, RoleFullStack, RoleDevOps, RoleMobile}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TechStack accepts either a JSON array of strings or a single
// comma-separated string on input. Entries are normalized (trimmed,
// empties dropped) by Normalize.
type TechStack []string

func (t *TechStack) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*t = strings.Split(joined, ",")
	return nil
}

func (t TechStack) Normalize() TechStack {
	out := make(TechStack, 0, len(t))
	for _, tech := range t {
		tech = strings.TrimSpace(tech)
		if tech != "" {
			out = append(out, tech)
		}
	}
	return out
}

// swagger:model domain.Developer
type Developer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Role        Role      `json:"role" validate:"required,oneof=Frontend Backend Full-Stack DevOps Mobile"`
	TechStack   TechStack `json:"techStack" validate:"required,min=1"`
	Experience  float64   `json:"experience" validate:"min=0,max=50"`
	About       string    `json:"about" validate:"omitempty,max=1000"`
	PhotoURL    string    `json:"photoUrl" validate:"omitempty,url"`
	JoiningDate time.Time `json:"joiningDate"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
