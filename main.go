package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/bpeddi/simple-ai-agent/agent/assistant"
	insurx "github.com/bpeddi/simple-ai-agent/agent/insurance"
	promptx "github.com/bpeddi/simple-ai-agent/agent/prompt"
	storex "github.com/bpeddi/simple-ai-agent/agent/store"
	toolx "github.com/bpeddi/simple-ai-agent/agent/tool"
	configx "github.com/bpeddi/simple-ai-agent/pkg/config"
	_ "github.com/bpeddi/simple-ai-agent/pkg/logger/autoload"
	openrouterx "github.com/bpeddi/simple-ai-agent/pkg/openrouter"
)

var exitCommands = map[string]bool{
	"quit":    true,
	"exit":    true,
	"bye":     true,
	"goodbye": true,
	"q":       true,
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("fatal startup error")
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llmCfg, err := configx.New[openrouterx.Config]("OPENROUTER")
	if err != nil {
		return fmt.Errorf("load llm config: %w", err)
	}

	st := storex.NewMemory()
	if err := insurx.Seed(st); err != nil {
		return fmt.Errorf("seed record store: %w", err)
	}
	svc, err := insurx.NewService(st)
	if err != nil {
		return err
	}
	infos, executor := toolx.Build(svc)

	chatModel, err := llmCfg.New(ctx)
	if err != nil {
		return err
	}
	agent, err := assistant.New(ctx, chatModel, infos, executor, promptx.Insurance())
	if err != nil {
		return err
	}

	log.Info().Int("tools", len(infos)).Str("model", llmCfg.Model).Msg("insurance assistant ready")
	printBanner()
	chatLoop(ctx, agent)
	return nil
}

func printBanner() {
	line := strings.Repeat("=", 80)
	fmt.Println("\n" + line)
	fmt.Println("INSURANCE AGENT - INTERACTIVE CHAT")
	fmt.Println(line)
	fmt.Println("\nWelcome! I'm your insurance assistant. I can help you with:")
	fmt.Println("  - Customer information and contact details")
	fmt.Println("  - Policy information, coverage, and premiums")
	fmt.Println("  - Claims status and history")
	fmt.Println("  - Coverage calculations and deductible information")
	fmt.Println("\nType 'quit' or 'exit' to end the conversation.")
	fmt.Println(line + "\n")
}

func chatLoop(ctx context.Context, agent *assistant.Assistant) {
	// Reader goroutine so Ctrl-C interrupts a blocked prompt.
	inputCh := make(chan string)
	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		defer close(inputCh)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("You: ")

		var (
			input string
			ok    bool
		)
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return
		case input, ok = <-inputCh:
			if !ok {
				fmt.Println("\nGoodbye!")
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			fmt.Println("Please ask a question or type 'quit' to exit.")
			fmt.Println()
			continue
		}
		if exitCommands[strings.ToLower(input)] {
			fmt.Println("\nThank you for using the Insurance Agent. Goodbye!")
			return
		}

		fmt.Print("\nAgent: ")
		reply, err := agent.HandleMessage(ctx, input)
		if err != nil {
			log.Error().Err(err).Msg("handle message")
			fmt.Printf("\nSorry, I encountered an error: %v\nPlease try again.\n\n", err)
			continue
		}
		fmt.Println(reply)
		fmt.Println()
	}
}
