package ports

import "github.com/aalvaropc/svgstore/internal/domain"

// ArtifactSource provides the build artifacts whose references get rewritten.
type ArtifactSource interface {
	LoadArtifacts() ([]*domain.Artifact, error)
	SaveArtifacts(artifacts []*domain.Artifact) error
}
