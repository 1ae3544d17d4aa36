package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads a content file. An empty path yields Default().
// The file replaces the built-in content as a whole; it is validated
// before being returned.
func Load(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Site{}, fmt.Errorf("reading content %s: %w", path, err)
	}
	var s Site
	if err := k.Unmarshal("", &s); err != nil {
		return Site{}, fmt.Errorf("decoding content %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Site{}, fmt.Errorf("content %s: %w", path, err)
	}
	return s, nil
}

// Dump encodes s as YAML in the layout Load expects.
func Dump(s Site) ([]byte, error) {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshalling content: %w", err)
	}
	return data, nil
}

// Validate checks the fields the page relies on. Titles, skills and tags
// are used as list keys, so duplicates are rejected.
func (s Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if dup := firstDuplicate(s.About.Skills); dup != "" {
		errs = append(errs, fmt.Errorf("duplicate skill %q", dup))
	}
	titles := make([]string, 0, len(s.Projects))
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("project %d: title is required", i))
			continue
		}
		titles = append(titles, p.Title)
		if dup := firstDuplicate(p.Tags); dup != "" {
			errs = append(errs, fmt.Errorf("project %q: duplicate tag %q", p.Title, dup))
		}
	}
	if dup := firstDuplicate(titles); dup != "" {
		errs = append(errs, fmt.Errorf("duplicate project title %q", dup))
	}
	return errors.Join(errs...)
}

func firstDuplicate(items []string) string {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it] {
			return it
		}
		seen[it] = true
	}
	return ""
}
