package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seliq/seliq/formatter"
	"github.com/seliq/seliq/htmlnode"
	"github.com/seliq/seliq/scanner"
	sel "github.com/seliq/seliq/selector"
)

var (
	querySelector string
	queryFirst    bool
)

var queryCmd = &cobra.Command{
	Use:   "query -s SELECTOR [paths...]",
	Short: "Run a selector against HTML documents",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		list, err := sel.Parse(querySelector)
		if err != nil {
			fmt.Print(formatter.FormatError(querySelector, err))
			os.Exit(1)
		}

		total, err := runQuery(ctx, logger, list, args, queryFirst)
		if err != nil {
			logger.Error("Error processing paths", zap.Error(err))
			os.Exit(1)
		}
		if total == 0 {
			os.Exit(1)
		}
	},
}

func init() {
	queryCmd.Flags().StringVarP(&querySelector, "selector", "s", "", "Selector to run (required)")
	queryCmd.Flags().BoolVar(&queryFirst, "first", false, "Stop after the first match per document")
	_ = queryCmd.MarkFlagRequired("selector")
}

// runQuery executes the parsed selector against every document reachable
// from the given paths and prints the matches. It returns the total match
// count.
func runQuery(ctx context.Context, logger *zap.Logger, list *sel.SelectorList, paths []string, firstOnly bool) (int, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return 0, err
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("querying"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	total := 0
	for _, file := range files {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		nodes, err := queryFile(file, list, firstOnly)
		if err != nil {
			logger.Error("Error querying document", zap.String("path", file), zap.Error(err))
			continue
		}
		total += len(nodes)
		if len(nodes) > 0 {
			fmt.Print(formatter.FormatMatches(file, list.String(), nodes))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	return total, nil
}

// collectFiles expands directories through the scanner and keeps plain
// files as-is.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := scanner.New(path).Scan()
			if err != nil {
				return nil, fmt.Errorf("error walking directory %s: %w", path, err)
			}
			for _, f := range found {
				files = append(files, f.Path)
			}
		} else {
			files = append(files, path)
		}
	}
	return files, nil
}

func queryFile(path string, list *sel.SelectorList, firstOnly bool) ([]sel.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := htmlnode.Parse(f)
	if err != nil {
		return nil, err
	}

	var m sel.Matcher
	if firstOnly {
		if n := m.QuerySelector(doc, list); n != nil {
			return []sel.Node{n}, nil
		}
		return nil, nil
	}
	return m.QuerySelectorAll(doc, list), nil
}
