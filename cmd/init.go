package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// initCmd: seliq init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new query configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initQueryFile(batchFile); err != nil {
			logger.Error("Error initializing query file", zap.Error(err))
			return
		}
		fmt.Printf("Query file created/updated: %s\n", batchFile)
	},
}

func initQueryFile(path string) error {
	if path == "" {
		path = ".seliq.yaml"
	}

	config := BatchConfig{
		Queries: []NamedQuery{
			{Name: "links", Selector: "a[href]"},
			{Name: "external-links", Selector: `a[href^="https"]:not([href*="example.com"])`},
			{Name: "required-inputs", Selector: "input[required]:enabled"},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
