package model

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed navigation.yaml
var defaultDefinition []byte

var errNoSections = errors.New("navigation declares no sections")

type Section struct {
	ID    string `yaml:"id"`
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

type Definition struct {
	Bases struct {
		Admin     string `yaml:"admin"`
		Reception string `yaml:"reception"`
	} `yaml:"bases"`
	AdminRoles     []string  `yaml:"admin_roles"`
	DefaultSection string    `yaml:"default_section"`
	Sections       []Section `yaml:"sections"`
}

// Default returns the embedded billing navigation.
func Default() (Definition, error) {
	return Parse(defaultDefinition)
}

func Parse(data []byte) (Definition, error) {
	var def Definition

	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("failed to parse navigation: %w", err)
	}

	if len(def.Sections) == 0 {
		return def, errNoSections
	}

	if def.DefaultSection == "" {
		def.DefaultSection = def.Sections[0].ID
	}

	if def.section(def.DefaultSection) == nil {
		return def, fmt.Errorf("default section %q is not declared", def.DefaultSection)
	}

	return def, nil
}

func (d Definition) section(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}

	return nil
}

// Base is the admin path for admin roles and the reception path for everyone else.
func (d Definition) Base(role string) string {
	if slices.Contains(d.AdminRoles, role) {
		return d.Bases.Admin
	}

	return d.Bases.Reception
}

// Active picks the section named by the segment after the last slash.
// Empty, the base segment itself and unknown slugs select the default section.
func (d Definition) Active(path, base string) string {
	segment := path[strings.LastIndex(path, "/")+1:]
	baseSegment := base[strings.LastIndex(base, "/")+1:]

	if segment == "" || segment == baseSegment {
		return d.DefaultSection
	}

	for _, section := range d.Sections {
		if section.Slug != "" && section.Slug == segment {
			return section.ID
		}
	}

	return d.DefaultSection
}

// Href links a section under base. Sections without a slug live at the base itself.
func (s Section) Href(base string) string {
	if s.Slug == "" {
		return base
	}

	return strings.TrimRight(base, "/") + "/" + s.Slug
}
