// Package watch regenerates snapshots when files under a watched root change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/temirov/snapmd/internal/scan"
	"github.com/temirov/snapmd/internal/types"
)

// DefaultDebounce is the quiet period applied when Options.Debounce is unset.
const DefaultDebounce = time.Second

const (
	watcherErrorMessage       = "filesystem watcher reported an error"
	watchAdditionFailedFormat = "watch: add directories under '%s': %w"
	regenerationFailedMessage = "snapshot regeneration failed"
	pathFieldName             = "path"
)

// Options configures a watch Service.
type Options struct {
	Root       string
	SkipPath   string
	Filter     *scan.Filter
	Debounce   time.Duration
	Logger     *zap.Logger
	Regenerate func() error
}

// Service watches a directory tree and invokes a regeneration callback once
// filesystem events settle for the configured debounce interval.
type Service struct {
	root       string
	skipPath   string
	filter     *scan.Filter
	debounce   time.Duration
	logger     *zap.Logger
	regenerate func() error
}

// NewService validates the options and constructs a watch Service.
func NewService(options Options) (*Service, error) {
	if options.Root == "" {
		return nil, fmt.Errorf("watch: root path is empty")
	}
	if options.Regenerate == nil {
		return nil, fmt.Errorf("watch: regenerate callback is nil")
	}
	debounceInterval := options.Debounce
	if debounceInterval <= 0 {
		debounceInterval = DefaultDebounce
	}
	loggerInstance := options.Logger
	if loggerInstance == nil {
		loggerInstance = zap.NewNop()
	}
	return &Service{
		root:       options.Root,
		skipPath:   options.SkipPath,
		filter:     options.Filter,
		debounce:   debounceInterval,
		logger:     loggerInstance,
		regenerate: options.Regenerate,
	}, nil
}

// Run watches the root until the context is cancelled. Regeneration failures
// are logged and watching continues; only watcher setup errors are fatal.
func (service *Service) Run(executionContext context.Context) error {
	watcherInstance, watcherCreationError := fsnotify.NewWatcher()
	if watcherCreationError != nil {
		return fmt.Errorf("watch: create watcher: %w", watcherCreationError)
	}
	defer watcherInstance.Close()

	if additionError := service.addWatchedDirectories(watcherInstance); additionError != nil {
		return additionError
	}

	var debounceTimer *time.Timer
	var debounceExpired <-chan time.Time
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-executionContext.Done():
			return executionContext.Err()
		case event, channelOpen := <-watcherInstance.Events:
			if !channelOpen {
				return nil
			}
			if service.shouldIgnoreEvent(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if entryInformation, statError := os.Stat(event.Name); statError == nil && entryInformation.IsDir() {
					if rescanError := service.addWatchedDirectories(watcherInstance); rescanError != nil {
						service.logger.Warn(watcherErrorMessage, zap.Error(rescanError))
					}
				}
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(service.debounce)
				debounceExpired = debounceTimer.C
				continue
			}
			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(service.debounce)
		case watcherError, channelOpen := <-watcherInstance.Errors:
			if !channelOpen {
				return nil
			}
			service.logger.Warn(watcherErrorMessage, zap.Error(watcherError))
		case <-debounceExpired:
			debounceTimer = nil
			debounceExpired = nil
			if regenerationError := service.regenerate(); regenerationError != nil {
				service.logger.Warn(regenerationFailedMessage, zap.Error(regenerationError))
			}
		}
	}
}

// addWatchedDirectories registers every non-ignored directory under the root.
// Adding an already-watched directory is harmless, so the tree is rescanned in
// full whenever a new directory appears.
func (service *Service) addWatchedDirectories(watcherInstance *fsnotify.Watcher) error {
	treeEntries, scanError := scan.Scan(scan.Options{
		Root:     service.root,
		Filter:   service.filter,
		SkipPath: service.skipPath,
	})
	if scanError != nil {
		return fmt.Errorf(watchAdditionFailedFormat, service.root, scanError)
	}
	for _, treeEntry := range treeEntries {
		if treeEntry.Kind != types.NodeTypeDirectory {
			continue
		}
		if additionError := watcherInstance.Add(treeEntry.AbsolutePath); additionError != nil {
			service.logger.Warn(watcherErrorMessage, zap.String(pathFieldName, treeEntry.AbsolutePath), zap.Error(additionError))
		}
	}
	return nil
}

// shouldIgnoreEvent reports whether an event concerns the output path or a
// path excluded by the filter.
func (service *Service) shouldIgnoreEvent(event fsnotify.Event) bool {
	absolutePath, absoluteError := filepath.Abs(event.Name)
	if absoluteError != nil {
		return false
	}
	if service.skipPath != "" && absolutePath == service.skipPath {
		return true
	}
	if service.filter == nil {
		return false
	}
	relativePath, relativeError := filepath.Rel(service.root, absolutePath)
	if relativeError != nil || strings.HasPrefix(relativePath, "..") {
		return false
	}
	for _, pathSegment := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if service.filter.IgnoresName(pathSegment) {
			return true
		}
	}
	entryInformation, statError := os.Stat(absolutePath)
	isDirectory := statError == nil && entryInformation.IsDir()
	return service.filter.Ignores(filepath.Base(absolutePath), relativePath, isDirectory)
}
