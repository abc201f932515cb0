package version

import (
	"errors"
	"fmt"
	"strings"
)

// BumpData represents the data needed to bump the app version
type BumpData struct {
	Version      string
	OutFile      string
	TemplatePath string
}

// Bump generates the version file, then commits and tags it
func Bump(data BumpData, generator VersionGenerator, vc VersionControl) error {
	if !strings.HasPrefix(data.Version, "v") {
		return errors.New("version must begin with a \"v\"")
	}

	if err := generator.Generate(VersionData{VERSION: data.Version}); err != nil {
		return fmt.Errorf("failed to generate version file: %w", err)
	}

	if err := vc.Add(data.OutFile); err != nil {
		return err
	}

	if err := vc.Commit(fmt.Sprintf("Bump version %s", data.Version)); err != nil {
		return err
	}

	return vc.Tag(data.Version)
}
