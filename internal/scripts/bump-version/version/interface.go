package version

// nolint:revive
// VersionData is passed to the info.go template, VERSION must start with "v"
type VersionData struct {
	VERSION string
}

//go:generate mockgen -destination=../../../mock/scripts/bump-version/version/version.go -package=mock_version . VersionControl,VersionGenerator

// nolint:revive
// VersionControl records the regenerated app-info file and tags the release
type VersionControl interface {
	Add(filePath string) error
	Commit(message string) error
	Tag(version string) error
}

// nolint:revive
// VersionGenerator renders the app-info file for a release
type VersionGenerator interface {
	Generate(data VersionData) error
}
