package ds

// ProcurementFlow describes how a new learning technology gets evaluated,
// depending on who starts the request.
type ProcurementFlow struct {
	ID    string            `yaml:"id" json:"id" validate:"required"`
	Title string            `yaml:"title" json:"title" validate:"required"`
	Color string            `yaml:"color" json:"color" validate:"omitempty,hexcolor"`
	Steps []ProcurementStep `yaml:"steps" json:"steps" validate:"min=1,dive"`
}

type ProcurementStep struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Actor       string `yaml:"actor" json:"actor" validate:"required"`
}
