package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edudesk/faqbot/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Chat runs a multi-turn session on the terminal. Conversation context is
kept between turns, so short follow-ups like "what about fees" resolve
against the previous question.

Type 'exit' or 'quit' to leave, '/reset' to forget the conversation.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	contexts := store.NewMemoryStore()
	conversationID := uuid.NewString()
	ctx := context.Background()

	fmt.Println("🤖 Institute FAQ bot. Ask away! (exit to quit, /reset to start over)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "exit", "quit":
			fmt.Println("Bye!")
			return nil
		case "/reset":
			if err := contexts.Reset(ctx, conversationID); err != nil {
				return fmt.Errorf("reset context: %w", err)
			}
			fmt.Println("Conversation forgotten.")
			continue
		}

		convCtx, ok, err := contexts.Load(ctx, conversationID)
		if err != nil {
			return fmt.Errorf("load context: %w", err)
		}
		if !ok {
			convCtx = engine.NewContext()
		}

		result := engine.HandleTurn(line, convCtx)
		fmt.Println(result.Reply)
		if verbose {
			fmt.Printf("[intent=%s confidence=%.3f turn=%d]\n",
				result.Intent, result.Confidence, result.Context.TurnCount)
		}

		if err := contexts.Save(ctx, conversationID, result.Context); err != nil {
			return fmt.Errorf("save context: %w", err)
		}
	}
}
