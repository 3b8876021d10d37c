package view

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crmarques/jenkview/faults"
)

// Manifest declares a set of desired views to converge in one apply run.
type Manifest struct {
	Views []ManifestView `yaml:"views"`
}

type ManifestView struct {
	Name string   `yaml:"name"`
	Jobs []string `yaml:"jobs,omitempty"`
}

func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, "failed to read view manifest", err)
	}
	return DecodeManifest(data)
}

func DecodeManifest(data []byte) (Manifest, error) {
	var manifest Manifest

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, "invalid view manifest yaml", err)
	}

	if len(manifest.Views) == 0 {
		return Manifest{}, faults.NewTypedError(faults.ValidationError, "view manifest declares no views", nil)
	}

	seen := make(map[string]struct{}, len(manifest.Views))
	for _, declared := range manifest.Views {
		if err := (DesiredView{Name: declared.Name}).Validate(); err != nil {
			return Manifest{}, err
		}
		if _, duplicate := seen[declared.Name]; duplicate {
			// Convergence passes for the same name must not run concurrently.
			return Manifest{}, faults.NewTypedError(
				faults.ValidationError,
				fmt.Sprintf("view %q is declared more than once", declared.Name),
				nil,
			)
		}
		seen[declared.Name] = struct{}{}

		for _, job := range declared.Jobs {
			if err := ValidateArgument(job); err != nil {
				return Manifest{}, err
			}
		}
	}

	return manifest, nil
}
