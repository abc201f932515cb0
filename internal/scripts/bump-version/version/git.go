package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git implements VersionControl by shelling out to the git binary
type Git struct {
	binary string
	dir    string
}

// NewGit returns a Git operating on the current working directory
func NewGit() *Git {
	return &Git{binary: "git"}
}

// NewGitInDir returns a Git operating on the repository at dir
func NewGitInDir(dir string) *Git {
	return &Git{binary: "git", dir: dir}
}

// Add stages filePath
func (g *Git) Add(filePath string) error {
	return g.run("add", filePath)
}

// Commit records staged changes with message
func (g *Git) Commit(message string) error {
	return g.run("commit", "-m", message)
}

// Tag creates an annotated release tag
func (g *Git) Tag(version string) error {
	return g.run("tag", "-a", "-m", "Release "+version, version)
}

func (g *Git) run(args ...string) error {
	cmd := exec.Command(g.binary, args...)
	cmd.Dir = g.dir

	out, err := cmd.CombinedOutput()

	if err != nil {
		return fmt.Errorf(
			"git %s: %w: %s",
			args[0],
			err,
			strings.TrimSpace(string(out)),
		)
	}

	return nil
}
