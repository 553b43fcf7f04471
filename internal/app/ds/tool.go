package ds

// Tool is one licensed or licensable learning technology from the catalog.
type Tool struct {
	ID             string   `yaml:"id" json:"id" validate:"required"`
	Name           string   `yaml:"name" json:"name" validate:"required"`
	Type           string   `yaml:"typ" json:"typ"` // comma separated tags
	HasAI          bool     `yaml:"ki" json:"ki"`
	AIDetail       string   `yaml:"kiDetail,omitempty" json:"kiDetail,omitempty"`
	ForStudents    bool     `yaml:"lernende" json:"lernende"`
	StudentsDetail string   `yaml:"lernendeDetail,omitempty" json:"lernendeDetail,omitempty"`
	ForTeachers    bool     `yaml:"lp" json:"lp"`
	License        string   `yaml:"lizenz" json:"lizenz" validate:"required"`
	LicenseDetail  string   `yaml:"lizenzDetail,omitempty" json:"lizenzDetail,omitempty"`
	Functions      string   `yaml:"funcs" json:"funcs"`
	Features       []string `yaml:"features,omitempty" json:"features,omitempty"`
	Access         string   `yaml:"zugang,omitempty" json:"zugang,omitempty"`
	// how an individual license is shared between teachers
	IndividualLicenseInfo string  `yaml:"einzellizenzInfo,omitempty" json:"einzellizenzInfo,omitempty"`
	Website               string  `yaml:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
	Guides                []Guide `yaml:"anleitungPdfs,omitempty" json:"anleitungPdfs,omitempty" validate:"dive"`
}

// Guide links a PDF manual for a tool.
type Guide struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Path  string `yaml:"path" json:"path" validate:"required"`
}
