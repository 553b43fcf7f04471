package repository

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"navigator/internal/app/ds"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	toolsFile       = "tools.yaml"
	rolesFile       = "roles.yaml"
	procurementFile = "procurement.yaml"
)

var ErrNotFound = errors.New("not found")

// Repository holds the static catalog. It is loaded once and never mutated,
// so it is safe for concurrent readers. Returned slices must not be modified.
type Repository struct {
	tools      []ds.Tool
	toolIndex  map[string]int
	roles      []ds.Role
	categories []ds.SystemCategory
	policies   []ds.PolicyRule
	processes  []ds.Process
	flows      []ds.ProcurementFlow
}

type toolsDocument struct {
	Tools []ds.Tool `yaml:"tools" validate:"min=1,dive"`
}

type rolesDocument struct {
	Roles            []ds.Role           `yaml:"roles" validate:"min=1,dive"`
	SystemCategories []ds.SystemCategory `yaml:"systemCategories" validate:"dive"`
	PolicyRules      []ds.PolicyRule     `yaml:"policyRules" validate:"dive"`
	Processes        []ds.Process        `yaml:"processes" validate:"dive"`
}

type procurementDocument struct {
	Flows []ds.ProcurementFlow `yaml:"procurementFlows" validate:"dive"`
}

// New loads the catalog compiled into the binary.
func New() (*Repository, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// NewFromDir loads the catalog files from a directory on disk.
func NewFromDir(dir string) (*Repository, error) {
	return Load(os.DirFS(dir))
}

// Load reads tools.yaml, roles.yaml and procurement.yaml from fsys and validates them.
func Load(fsys fs.FS) (*Repository, error) {
	var (
		tools       toolsDocument
		roles       rolesDocument
		procurement procurementDocument
	)
	if err := decode(fsys, toolsFile, &tools); err != nil {
		return nil, err
	}
	if err := decode(fsys, rolesFile, &roles); err != nil {
		return nil, err
	}
	if err := decode(fsys, procurementFile, &procurement); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(tools); err != nil {
		return nil, fmt.Errorf("validate %s: %w", toolsFile, err)
	}
	if err := validate.Struct(roles); err != nil {
		return nil, fmt.Errorf("validate %s: %w", rolesFile, err)
	}
	if err := validate.Struct(procurement); err != nil {
		return nil, fmt.Errorf("validate %s: %w", procurementFile, err)
	}

	toolIndex, err := indexTools(tools.Tools)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", toolsFile, err)
	}
	if err := checkMatrix(roles); err != nil {
		return nil, fmt.Errorf("validate %s: %w", rolesFile, err)
	}
	if err := checkFlows(procurement.Flows); err != nil {
		return nil, fmt.Errorf("validate %s: %w", procurementFile, err)
	}

	logrus.WithFields(logrus.Fields{
		"tools":      len(tools.Tools),
		"roles":      len(roles.Roles),
		"categories": len(roles.SystemCategories),
		"flows":      len(procurement.Flows),
	}).Info("catalog loaded")

	return &Repository{
		tools:      tools.Tools,
		toolIndex:  toolIndex,
		roles:      roles.Roles,
		categories: roles.SystemCategories,
		policies:   roles.PolicyRules,
		processes:  roles.Processes,
		flows:      procurement.Flows,
	}, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func indexTools(tools []ds.Tool) (map[string]int, error) {
	index := make(map[string]int, len(tools))
	for i, t := range tools {
		if _, dup := index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", t.ID)
		}
		index[t.ID] = i
	}
	return index, nil
}

// checkMatrix ensures role ids are unique and every matrix cell names a known role.
func checkMatrix(doc rolesDocument) error {
	known := make(map[string]struct{}, len(doc.Roles))
	for _, r := range doc.Roles {
		if _, dup := known[r.ID]; dup {
			return fmt.Errorf("duplicate role id %q", r.ID)
		}
		known[r.ID] = struct{}{}
	}
	for _, c := range doc.SystemCategories {
		for _, s := range c.Systems {
			for roleID := range s.Access {
				if _, ok := known[roleID]; !ok {
					return fmt.Errorf("system %q in %q references unknown role %q", s.Name, c.ID, roleID)
				}
			}
		}
	}
	return nil
}

func checkFlows(flows []ds.ProcurementFlow) error {
	seen := make(map[string]struct{}, len(flows))
	for _, f := range flows {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("duplicate procurement flow id %q", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}
