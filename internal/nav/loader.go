package nav

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type pageFile struct {
	Pages []Page `yaml:"pages"`
}

// LoadPages reads a YAML page table of the form:
//
//	pages:
//	  - title: Home
//	    default: true
//	  - title: Settings
//	    icon: gear
func LoadPages(r io.Reader) ([]Page, error) {
	var f pageFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("nav: decode page table: %w", err)
	}
	if err := Validate(f.Pages); err != nil {
		return nil, err
	}
	return f.Pages, nil
}

// LoadPagesFile reads a YAML page table from disk.
func LoadPagesFile(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nav: open page table: %w", err)
	}
	defer f.Close()
	return LoadPages(f)
}
