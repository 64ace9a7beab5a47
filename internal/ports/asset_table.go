package ports

// Asset is an output file held by an AssetTable.
type Asset struct {
	Source func() []byte
	Size   func() int
}

// AssetTable is the set of build outputs keyed by output path.
type AssetTable interface {
	Asset(path string) (Asset, bool)
	SetAsset(path string, asset Asset)
}
