package storage

// ArchiveInterface defines the contract for persona archival backends
type ArchiveInterface interface {
	Store(name string, data []byte) error
	Retrieve(name string) ([]byte, error)
	List(prefix string) ([]string, error)
	Delete(name string) error
}
