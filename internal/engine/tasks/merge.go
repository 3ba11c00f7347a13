// Package tasks merges generated build tasks into task collections by label.
package tasks

import (
	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/zerr"
)

// NewCollection returns a collection holding only rec.
func NewCollection(rec domain.TaskRecord) (*domain.TaskCollection, domain.MergeOutcome, error) {
	entry, err := rec.Entry()
	if err != nil {
		return nil, domain.MergeOutcome{}, zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "label", rec.Label)
	}

	c := &domain.TaskCollection{Entries: []domain.TaskEntry{entry}}
	return c, domain.MergeOutcome{Mode: domain.MergeCreated, Index: 0}, nil
}

// Merge places rec into c. An entry with the same label is replaced in
// place; otherwise rec is appended. Entries without a matching label are
// left untouched.
func Merge(c *domain.TaskCollection, rec domain.TaskRecord) (domain.MergeOutcome, error) {
	entry, err := rec.Entry()
	if err != nil {
		return domain.MergeOutcome{}, zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "label", rec.Label)
	}

	if i := c.IndexOf(rec.Label); i >= 0 {
		c.Entries[i] = entry
		return domain.MergeOutcome{Mode: domain.MergeReplaced, Index: i}, nil
	}

	c.Entries = append(c.Entries, entry)
	return domain.MergeOutcome{Mode: domain.MergeAppended, Index: len(c.Entries) - 1}, nil
}
