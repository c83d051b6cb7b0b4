package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one iTunes category, optionally with a subcategory.
// The YAML representation is flexible, see UnmarshalYAML.
type Category struct {
	Name string `yaml:"name"`
	Sub  string `yaml:"sub,omitempty"`
}

// UnmarshalYAML accepts three shapes for a single category:
//
//	"Technology"
//	["Society & Culture", "Personal Journals"]
//	{name: "Society & Culture", sub: "Personal Journals"}
//
// Anything else is a configuration error.
func (c *Category) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		if strings.TrimSpace(name) == "" {
			return errors.New("category name must not be empty")
		}
		c.Name = name
		c.Sub = ""
		return nil
	}

	var pair []string
	if err := unmarshal(&pair); err == nil {
		if len(pair) < 1 || len(pair) > 2 {
			return fmt.Errorf("category pair must have one or two elements, got %d", len(pair))
		}
		if strings.TrimSpace(pair[0]) == "" {
			return errors.New("category name must not be empty")
		}
		c.Name = pair[0]
		if len(pair) == 2 {
			c.Sub = pair[1]
		}
		return nil
	}

	// Can not use the Category type here as that makes unmarshalling
	// infinitely recursive.
	type categoryInternal struct {
		Name string `yaml:"name"`
		Sub  string `yaml:"sub"`
	}
	var category categoryInternal
	if err := unmarshal(&category); err != nil {
		return fmt.Errorf("category must be a string, a [name, sub] pair or a name/sub mapping: %w", err)
	}
	if strings.TrimSpace(category.Name) == "" {
		return errors.New("category mapping requires a non-empty name key")
	}
	c.Name = category.Name
	c.Sub = category.Sub
	return nil
}

// MarshalYAML writes the plain string shape when there is no
// subcategory and the name/sub mapping otherwise.
func (c Category) MarshalYAML() (interface{}, error) {
	if c.Sub == "" {
		return c.Name, nil
	}
	type categoryInternal struct {
		Name string `yaml:"name"`
		Sub  string `yaml:"sub"`
	}
	return categoryInternal{Name: c.Name, Sub: c.Sub}, nil
}

// CategoryList normalizes the channel-level categories field which may
// be a single category or a list of categories in any of the shapes
// Category accepts. Input order and duplicates are preserved.
type CategoryList []Category

func (l *CategoryList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var many []Category
	if err := unmarshal(&many); err == nil {
		*l = many
		return nil
	}
	var one Category
	if err := unmarshal(&one); err != nil {
		return fmt.Errorf("invalid categories value: %w", err)
	}
	*l = CategoryList{one}
	return nil
}
