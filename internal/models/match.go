package models

// FileMatch is a file found during a recursive scan whose bare name matched
// at least one of the requested patterns.
type FileMatch struct {
	Name string `yaml:"name"` // Bare filename, e.g. "Actor.uc"
	Path string `yaml:"path"` // Scan root joined with the path relative to it
}
