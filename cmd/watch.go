package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seliq/seliq/formatter"
	sel "github.com/seliq/seliq/selector"
)

var watchSelector string

// debounce interval: editors fire several write events per save.
const watchSettle = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch -s SELECTOR [paths...]",
	Short: "Re-run a query whenever the watched documents change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		list, err := sel.Parse(watchSelector)
		if err != nil {
			fmt.Print(formatter.FormatError(watchSelector, err))
			os.Exit(1)
		}

		if err := runWatch(logger, list, args); err != nil {
			logger.Error("Watch failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchSelector, "selector", "s", "", "Selector to run (required)")
	_ = watchCmd.MarkFlagRequired("selector")
}

func runWatch(logger *zap.Logger, list *sel.SelectorList, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("error watching %s: %w", path, err)
		}
	}

	// Initial run so the terminal shows current state immediately.
	if _, err := runQuery(context.Background(), logger, list, paths, false); err != nil {
		logger.Error("Error running query", zap.Error(err))
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	var settle *time.Timer
	settleC := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(watchSettle, func() {
				select {
				case settleC <- struct{}{}:
				default:
				}
			})
		case <-settleC:
			if _, err := runQuery(context.Background(), logger, list, paths, false); err != nil {
				logger.Error("Error running query", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))
		case <-sigs:
			return nil
		}
	}
}
