package server

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchAliasFile starts an fsnotify watcher on the alias file and reloads
// it when it changes. Editors often replace the file rather than write it
// in place, so the parent directory is watched and events filtered by name.
func (s *Server) watchAliasFile(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	name := filepath.Base(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if err := s.Console.LoadAliasFile(path); err != nil {
					log.Printf("alias reload: %v", err)
					continue
				}
				log.Printf("alias file %s reloaded", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("alias watcher: %v", err)
			}
		}
	}()
	return nil
}
