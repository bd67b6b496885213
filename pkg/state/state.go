package state

import (
	"io/fs"
	"time"
)

// State is the persisted conversion ledger.
type State struct {
	// Files maps absolute input paths to their last conversion outcome.
	Files map[string]Entry `json:"files"`

	// LastRunAt is the time of the last ledger update.
	LastRunAt time.Time `json:"last_run_at"`
}

// Entry records the outcome for one input file.
type Entry struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`

	// Outputs lists the artifacts written for this input.
	Outputs []string `json:"outputs,omitempty"`

	// Error holds the decode error when conversion failed.
	Error string `json:"error,omitempty"`

	ConvertedAt time.Time `json:"converted_at"`
}

// IsEmpty returns true if no file has been recorded.
func (s State) IsEmpty() bool {
	return len(s.Files) == 0
}

// Converted reports whether path was already handled at its current size and
// modification time, successfully or not.
func (s State) Converted(path string, info fs.FileInfo) bool {
	e, ok := s.Files[path]
	if !ok {
		return false
	}
	return e.Size == info.Size() && e.ModTime.Equal(info.ModTime())
}

// MarkConverted records a successful conversion.
func (s *State) MarkConverted(path string, info fs.FileInfo, outputs []string) {
	s.record(path, info, Entry{Outputs: outputs})
}

// MarkFailed records a conversion that failed with err.
func (s *State) MarkFailed(path string, info fs.FileInfo, err error) {
	s.record(path, info, Entry{Error: err.Error()})
}

func (s *State) record(path string, info fs.FileInfo, e Entry) {
	if s.Files == nil {
		s.Files = make(map[string]Entry)
	}
	now := time.Now()
	e.Size = info.Size()
	e.ModTime = info.ModTime()
	e.ConvertedAt = now
	s.Files[path] = e
	s.LastRunAt = now
}
