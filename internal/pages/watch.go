package pages

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pageswipe/internal/eventbus"
)

// Editors tend to write a file in several steps; wait for them to settle.
const settleDelay = 150 * time.Millisecond

// Watcher rescans a pages directory whenever a matching file changes and
// publishes the result as a PagesChangedEvent.
type Watcher struct {
	dir     string
	pattern string
	bus     eventbus.EventBus
	log     logrus.FieldLogger

	fsw  *fsnotify.Watcher
	wg   sync.WaitGroup
	stop context.CancelFunc
}

// NewWatcher creates a watcher for dir. Call Start to begin watching.
func NewWatcher(dir, pattern string, bus eventbus.EventBus, log logrus.FieldLogger) *Watcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Watcher{dir: dir, pattern: pattern, bus: bus, log: log.WithField("component", "pages")}
}

// Start begins watching until ctx is cancelled or Close is called
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return errors.Wrapf(err, "failed to watch %s", w.dir)
	}
	w.fsw = fsw

	ctx, w.stop = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Close stops the watcher and waits for it to exit
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	w.stop()
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.WithFields(logrus.Fields{"file": ev.Name, "op": ev.Op.String()}).Debug("page file changed")
			if timer == nil {
				timer = time.NewTimer(settleDelay)
			} else {
				timer.Reset(settleDelay)
			}
			timerCh = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
			w.bus.Publish(eventbus.ErrorEvent{Message: "page watcher failed", Err: err})

		case <-timerCh:
			timerCh = nil
			w.rescan(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return Matches(filepath.Base(ev.Name), w.pattern)
}

func (w *Watcher) rescan(ctx context.Context) {
	pages, err := Discover(ctx, w.dir, w.pattern)
	if err != nil {
		// Keep showing what we have; an empty directory cannot back a carousel
		w.log.WithError(err).Warn("rescan failed")
		w.bus.Publish(eventbus.ErrorEvent{Message: "page rescan failed", Err: err})
		return
	}
	w.log.WithField("pages", len(pages)).Info("pages rescanned")
	w.bus.Publish(eventbus.PagesChangedEvent{Dir: w.dir, Pages: pages})
}
