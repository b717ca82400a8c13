package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/seliq/seliq/formatter"
	sel "github.com/seliq/seliq/selector"
)

var batchFile string

// NamedQuery is one entry of a batch file.
type NamedQuery struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
}

// BatchConfig is the YAML document `seliq batch` consumes.
type BatchConfig struct {
	Queries []NamedQuery `yaml:"queries"`
}

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Run a named set of queries from a YAML file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		queries, err := loadQueries(batchFile)
		if err != nil {
			logger.Error("Failed to load query file", zap.String("path", batchFile), zap.Error(err))
			os.Exit(1)
		}

		failed := false
		for _, q := range queries {
			list, err := sel.Parse(q.Selector)
			if err != nil {
				fmt.Print(formatter.FormatError(q.Selector, err))
				failed = true
				continue
			}
			fmt.Printf("== %s ==\n", q.Name)
			if _, err := runQuery(ctx, logger, list, args, false); err != nil {
				logger.Error("Error running query", zap.String("name", q.Name), zap.Error(err))
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "config", "c", ".seliq.yaml", "Query file to run")
}

func loadQueries(path string) ([]NamedQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Queries, nil
}
