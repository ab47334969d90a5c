package idgen

import "github.com/google/uuid"

// Generator produces identifiers that are unique for the lifetime of the
// process. It is injected into usecases so tests can substitute a
// deterministic sequence.
type Generator interface {
	New() string
}

type uuidGenerator struct{}

// NewUUID returns a Generator backed by random UUIDv4 strings.
func NewUUID() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) New() string {
	return uuid.NewString()
}
