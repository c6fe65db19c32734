package config

import (
	"log"
	"os"

	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"gopkg.in/yaml.v2"
)

// Catalog holds the fixed enumerations offered by the public forms.
type Catalog struct {
	ServiceTypes []string `yaml:"service_types"`
}

// LoadCatalog reads the YAML catalog at path. Missing or empty sections fall
// back to the built-in defaults.
func LoadCatalog(path string) Catalog {
	cat := Catalog{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("catalog: %v, using defaults", err)
		} else if err := ParseCatalog(data, &cat); err != nil {
			log.Printf("catalog: %v, using defaults", err)
			cat = Catalog{}
		}
	}
	if len(cat.ServiceTypes) == 0 {
		cat.ServiceTypes = append([]string(nil), quote.DefaultServiceTypes...)
	}
	return cat
}

func ParseCatalog(data []byte, cat *Catalog) error {
	return yaml.Unmarshal(data, cat)
}
