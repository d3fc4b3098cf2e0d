// Command hello-ai sends one fixed prompt to the OpenAI chat completions API
// and prints the reply.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minhyannv/hello-ai-go/pkg/assistant"
	"github.com/minhyannv/hello-ai-go/pkg/chat"
	configpkg "github.com/minhyannv/hello-ai-go/pkg/config"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

func main() {
	config, err := configpkg.ParseFlags("hello-ai", os.Args[1:], os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	client := chat.NewOpenAIClient(config, appLogger)
	if err := run(context.Background(), client, config, appLogger, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client chat.Completer, config configpkg.Config, logger loggerpkg.Logger, out io.Writer) error {
	runner, err := assistant.NewRunner(client, config, assistant.WithLogger(logger))
	if err != nil {
		return err
	}
	return runner.Run(ctx, out)
}
