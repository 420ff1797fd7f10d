package employee

// Store persists the full roster document. Save always rewrites the whole
// document; there is no incremental update. A missing or malformed document
// loads as an empty roster rather than an error.
type Store interface {
	Load() ([]Employee, error)
	Save([]Employee) error
}
