package domain

import "time"

// IconReport describes one symbol inside a generated sprite.
type IconReport struct {
	Source string `json:"source"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URL    string `json:"url"`
}

// SpriteReport describes one generated sprite.
type SpriteReport struct {
	Name        string       `json:"name"`
	LogicalPath string       `json:"logical_path"`
	FinalPath   string       `json:"final_path"`
	Size        int          `json:"size"`
	Emitted     bool         `json:"emitted"`
	Error       string       `json:"error,omitempty"`
	Icons       []IconReport `json:"icons"`
}

// IconFailure records an icon that could not be ingested.
type IconFailure struct {
	Sprite  string    `json:"sprite"`
	Source  string    `json:"source"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// RewriteReport records how many references were rewritten in one artifact.
type RewriteReport struct {
	Path         string `json:"path"`
	Replacements int    `json:"replacements"`
}

// BuildReport is the persisted summary of one build pass.
type BuildReport struct {
	ID         string          `json:"id,omitempty"`
	Root       string          `json:"root,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Phase      Phase           `json:"phase"`
	Sprites    []SpriteReport  `json:"sprites"`
	Failures   []IconFailure   `json:"failures"`
	Rewrites   []RewriteReport `json:"rewrites"`
}

// ReportRef is a lightweight reference to a saved report.
type ReportRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	StartedAt time.Time `json:"started_at"`
	Sprites   int       `json:"sprites"`
	Failures  int       `json:"failures"`
}

// QueryResult is the outcome of one JSONPath query over a report.
type QueryResult struct {
	Expr    string
	Value   string
	Success bool
	Message string
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root string
}
