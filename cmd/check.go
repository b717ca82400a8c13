package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seliq/seliq/formatter"
	sel "github.com/seliq/seliq/selector"
)

var checkCmd = &cobra.Command{
	Use:   "check SELECTOR...",
	Short: "Validate selectors and print their parsed structure",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide at least one selector")
			os.Exit(1)
		}

		failed := false
		for _, arg := range args {
			list, err := sel.Parse(arg)
			if err != nil {
				fmt.Print(formatter.FormatError(arg, err))
				failed = true
				continue
			}
			fmt.Print(formatter.FormatParsed(arg, list))
		}
		if failed {
			os.Exit(1)
		}
	},
}
