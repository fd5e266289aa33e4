package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var faqsCmd = &cobra.Command{
	Use:   "faqs",
	Short: "List the FAQ corpus entries",
	Args:  cobra.NoArgs,
	RunE:  runFaqs,
}

func runFaqs(cmd *cobra.Command, args []string) error {
	_, entries, err := buildEngine()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%2d. %s\n", e.ID, e.Question)
		if verbose {
			fmt.Printf("    intent: %s, keywords: %v\n", e.Intent, e.Keywords)
		}
	}
	return nil
}
