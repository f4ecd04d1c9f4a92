package importer

import (
	"hash/fnv"
	"strings"
)

// SubjectResolver derives the canonical subject ID referenced by a row
// from the subject name in that row. Resolution never fails: whether the
// derived ID actually exists is the referential validator's job.
//
// Resolvers must be deterministic — the same name always maps to the
// same ID — and must not perform I/O, because they run inside the pure
// row decoder.
type SubjectResolver interface {
	Resolve(subjectName string) int64
}

// MaxDerivedSubjectID bounds hash-derived subject IDs to a positive range
// that fits comfortably in the subjects table key space.
const MaxDerivedSubjectID = 1_000_000_000

// HashResolver derives the ID from an FNV-1a hash of the trimmed subject
// name, reduced into [1, MaxDerivedSubjectID].
type HashResolver struct{}

func (HashResolver) Resolve(subjectName string) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(subjectName)))
	return int64(h.Sum64()%MaxDerivedSubjectID) + 1
}

// TableResolver resolves subject names against a pre-resolved name→ID
// table (for callers that looked the subjects up ahead of the import) and
// falls back to another resolver for names missing from the table.
type TableResolver struct {
	ids      map[string]int64
	fallback SubjectResolver
}

func NewTableResolver(ids map[string]int64, fallback SubjectResolver) *TableResolver {
	if fallback == nil {
		fallback = HashResolver{}
	}
	return &TableResolver{ids: ids, fallback: fallback}
}

func (r *TableResolver) Resolve(subjectName string) int64 {
	if id, ok := r.ids[strings.TrimSpace(subjectName)]; ok {
		return id
	}
	return r.fallback.Resolve(subjectName)
}
