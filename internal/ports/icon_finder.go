package ports

// IconFinder enumerates icon sources below a directory and reads them.
type IconFinder interface {
	// FindIcons returns the files under dir matching pattern, sorted.
	FindIcons(dir, pattern string) ([]string, error)
	ReadIcon(path string) ([]byte, error)
}
