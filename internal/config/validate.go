package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		return errors.New("paths.target_dir must be set")
	}
	if strings.TrimSpace(c.Paths.JournalFile) == "" {
		return errors.New("paths.journal_file must be set")
	}
	return nil
}

func (c *Config) validateCategories() error {
	seen := make(map[string]struct{}, len(c.Categories))
	for i, category := range c.Categories {
		if category.Name == "" {
			return fmt.Errorf("categories[%d].name must be set", i)
		}
		if strings.ContainsAny(category.Name, `/\`) {
			return fmt.Errorf("categories[%d].name %q must not contain path separators", i, category.Name)
		}
		if _, dup := seen[category.Name]; dup {
			return fmt.Errorf("duplicate category name %q", category.Name)
		}
		seen[category.Name] = struct{}{}
		for _, ext := range category.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("category %q extension %q must begin with a dot", category.Name, ext)
			}
		}
	}
	return nil
}

func (c *Config) validateOrganize() error {
	for _, name := range c.Organize.Ignore {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("organize.ignore entry %q must be a bare filename", name)
		}
	}
	return nil
}
