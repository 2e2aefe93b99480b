// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     explorer
// Description: File system notifications for the explored file
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fileWatcher delivers change events for a single file. The parent
// directory is watched so that editors replacing the file are seen.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{w: w, path: abs}, nil
}

// wait blocks until the file is written, created or replaced, or the
// watcher reports an error. It returns watchClosedMsg once closed.
func (fw *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-fw.w.Events:
				if !ok {
					return watchClosedMsg{}
				}
				if filepath.Clean(event.Name) != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				return fileEventMsg{}

			case err, ok := <-fw.w.Errors:
				if !ok {
					return watchClosedMsg{}
				}
				return fileEventMsg{err: err}
			}
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
