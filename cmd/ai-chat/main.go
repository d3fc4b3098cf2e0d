// Command ai-chat is an interactive console chat against the OpenAI chat
// completions API. Each line is answered on its own; type "quit" to leave.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhyannv/hello-ai-go/pkg/assistant"
	"github.com/minhyannv/hello-ai-go/pkg/chat"
	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

func main() {
	config, err := configpkg.ParseFlags("ai-chat", os.Args[1:], os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	client := chat.NewOpenAIClient(config, appLogger)
	app, err := assistant.New(client, config, assistant.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(context.Background(), app, replOptions{
		Verbose: config.Verbose,
		Logger:  appLogger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
