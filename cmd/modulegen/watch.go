package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/modulegen/internal/cli"
)

// debounce collapses the burst of events editors emit on save.
const debounce = 150 * time.Millisecond

// watch calls run once, then again after every change of the file at path,
// until ctx is done. Failed runs are reported and watching continues.
func watch(ctx context.Context, path string, run func() error, p *cli.Printer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.GeneralError("starting watcher", err)
	}
	defer w.Close()

	// Editors often replace the file, so the directory is watched.
	target, err := filepath.Abs(path)
	if err != nil {
		return cli.GeneralError("resolving schema path", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return cli.GeneralError("watching schema", err)
	}

	report := func() {
		if err := run(); err != nil {
			p.Println(p.Error(err.Error()))
		}
		p.Println(fmt.Sprintf("watching %s for changes", path))
	}
	report()

	changed := make(chan struct{}, 1)
	timer := time.AfterFunc(time.Hour, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(debounce)
		case <-changed:
			report()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return cli.GeneralError("watching schema", err)
		}
	}
}
