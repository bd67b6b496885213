// Package state persists which capture files have already been converted.
//
// Watch mode records one Entry per input file. A file is converted again only
// when its size or modification time changes, so restarting the watcher does
// not redo finished work.
//
// # Usage
//
//	repo := state.NewFileRepository("/path/to/state/dir")
//
//	s, err := repo.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	if !s.Converted(path, info) {
//	    // ... convert ...
//	    s.MarkConverted(path, info, outputs)
//	}
//	if err := repo.Save(ctx, s); err != nil {
//	    return err
//	}
package state
