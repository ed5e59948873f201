package util

import (
	"context"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mnikita/scenario-worker/pkg/log"
)

type ConfigWatcherEventHandler interface {
	OnConfigModified()
}

type ConfigWatcher struct {
	eventHandler ConfigWatcherEventHandler

	watcher *fsnotify.Watcher

	watchStarted bool
}

//IsNil reports whether i is nil or holds a nil pointer
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch reflect.TypeOf(i).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Func, reflect.Interface:
		return reflect.ValueOf(i).IsNil()
	}

	return false
}

//Sleep waits for d or until ctx is done. It returns false when ctx ended the wait
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func NewConfigWatcher(eventHandler ConfigWatcherEventHandler) (c *ConfigWatcher, err error) {
	c = &ConfigWatcher{}

	c.eventHandler = eventHandler

	// creates a new file watcher
	c.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *ConfigWatcher) WatchConfigFile(configFile string) (err error) {
	if !c.watchStarted {
		c.watchStarted = true

		go func() {
			log.Logger().ConfigWatchStart()

			for {
				select {
				case event, ok := <-c.watcher.Events:
					if !ok {
						return
					}

					if event.Op&fsnotify.Write == fsnotify.Write {
						log.Logger().ConfigWatchModified(event.Name)

						if !IsNil(c.eventHandler) {
							c.eventHandler.OnConfigModified()
						}
					}
				case err, ok := <-c.watcher.Errors:
					if !ok {
						return
					}

					log.Logger().ConfigWatchError(err)
				}
			}
		}()
	}

	if configFile != "" {
		err = c.watcher.Add(configFile)
		if err != nil {
			return err
		}

		log.Logger().ConfigWatchFile(configFile)
	}

	return nil
}

func (c *ConfigWatcher) StopWatch() (err error) {
	log.Logger().ConfigWatchStop()

	return c.watcher.Close()
}
