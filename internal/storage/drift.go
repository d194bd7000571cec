package storage

import (
	"sort"

	"github.com/google/uuid"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/games"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/keys"
)

type DriftKind string

const (
	// DriftMissing: a registry game has no row in the database.
	DriftMissing DriftKind = "missing"
	// DriftExtra: a database row has no registry game.
	DriftExtra        DriftKind = "extra"
	DriftKeyMismatch  DriftKind = "key_mismatch"
	DriftNameMismatch DriftKind = "name_mismatch"
)

// Drift is one disagreement between the games table and the registry.
type Drift struct {
	Kind     DriftKind `json:"kind"`
	ID       string    `json:"id"`
	Key      string    `json:"key,omitempty"`
	Expected string    `json:"expected,omitempty"`
	Actual   string    `json:"actual,omitempty"`
}

// Compare diffs database rows against the registry. Identifiers are compared
// as UUIDs, keys after normalization and names byte for byte. The result is
// sorted by identifier then kind; nil means in sync.
func Compare(records []GameRecord) []Drift {
	var out []Drift
	byID := make(map[uuid.UUID]GameRecord, len(records))
	for _, r := range records {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			out = append(out, Drift{Kind: DriftExtra, ID: r.ID, Key: r.Key, Actual: r.Name})
			continue
		}
		byID[id] = r
	}

	for _, e := range games.Entries() {
		r, ok := byID[e.ID]
		if !ok {
			out = append(out, CompareRecord(e, nil)...)
			continue
		}
		delete(byID, e.ID)
		out = append(out, CompareRecord(e, &r)...)
	}
	for _, r := range byID {
		out = append(out, Drift{Kind: DriftExtra, ID: r.ID, Key: r.Key, Actual: r.Name})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// CompareRecord diffs one registry entry against its database row. A nil row
// is reported as missing.
func CompareRecord(e games.Entry, r *GameRecord) []Drift {
	if r == nil {
		return []Drift{{Kind: DriftMissing, ID: e.ID.String(), Key: e.Key.String(), Expected: e.Name}}
	}
	var out []Drift
	if keys.Normalize(r.Key) != e.Key.String() {
		out = append(out, Drift{Kind: DriftKeyMismatch, ID: e.ID.String(), Key: e.Key.String(), Expected: e.Key.String(), Actual: r.Key})
	}
	if r.Name != e.Name {
		out = append(out, Drift{Kind: DriftNameMismatch, ID: e.ID.String(), Key: e.Key.String(), Expected: e.Name, Actual: r.Name})
	}
	return out
}

// VerifyRegistry loads the games table and compares it with the registry.
func VerifyRegistry(repo interface {
	ListGames() ([]GameRecord, error)
}) ([]Drift, error) {
	records, err := repo.ListGames()
	if err != nil {
		return nil, err
	}
	return Compare(records), nil
}
