package ds

// NoAccess marks a matrix cell where the role has no rights on the system.
const NoAccess = "–"

type Role struct {
	ID               string   `yaml:"id" json:"id" validate:"required"`
	Label            string   `yaml:"label" json:"label" validate:"required"`
	ShortLabel       string   `yaml:"shortLabel" json:"shortLabel"`
	Description      string   `yaml:"description" json:"description"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

// SystemCategory groups systems (OpenOlat, Microsoft 365, ...) with their permission matrix.
type SystemCategory struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Systems     []System `yaml:"systems" json:"systems" validate:"dive"`
}

type System struct {
	Name   string            `yaml:"name" json:"name" validate:"required"`
	Detail string            `yaml:"detail,omitempty" json:"detail,omitempty"`
	Access map[string]string `yaml:"access" json:"access"` // role id -> access level
}

type PolicyRule struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

// Process is a permission management process (setup, removal, password reset).
type Process struct {
	ID    string        `yaml:"id" json:"id" validate:"required"`
	Title string        `yaml:"title" json:"title" validate:"required"`
	Steps []ProcessStep `yaml:"steps" json:"steps" validate:"dive"`
}

type ProcessStep struct {
	Step   int    `yaml:"step" json:"step" validate:"gte=1"`
	Actor  string `yaml:"actor" json:"actor" validate:"required"`
	Action string `yaml:"action" json:"action" validate:"required"`
}
