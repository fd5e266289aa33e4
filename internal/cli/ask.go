package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question against the FAQ corpus",
	Long: `Ask answers one question and exits. No conversation context is kept;
use 'chat' for multi-turn sessions with follow-up resolution.

Examples:
  faqbot ask "What is the admission process?"
  faqbot ask "hostel fees" -v`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	result := engine.HandleTurn(args[0], engine.NewContext())

	fmt.Println(result.Reply)
	if verbose {
		fmt.Printf("\n[intent=%s confidence=%.3f", result.Intent, result.Confidence)
		if result.FaqID != nil {
			fmt.Printf(" faq_id=%d", *result.FaqID)
		}
		if result.FallbackType != "" {
			fmt.Printf(" fallback=%s", result.FallbackType)
		}
		fmt.Println("]")
	}
	return nil
}
