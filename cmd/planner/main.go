package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"route-planner-service/internal/adapters/console"
	"route-planner-service/internal/adapters/file"
	"route-planner-service/internal/config"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
)

// main plans a single request read from a file or from interactive prompts and
// prints the routes to stdout.
func main() {
	inputPath := flag.String("input", "", "YAML or JSON request file (prompts on stdin when empty)")
	flag.Parse()

	config.Load()

	opts, err := services.PlanOptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var input ports.InputProvider = console.NewConsoleInputProvider(os.Stdin, os.Stdout)
	if *inputPath != "" {
		input = file.NewFileInputProvider(*inputPath)
	}
	var output ports.OutputSink = console.NewConsoleOutputSink(os.Stdout)

	if err := run(ctx, input, output, opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, in ports.InputProvider, out ports.OutputSink, opts services.PlanOptions) error {
	req, err := in.ReadRequest(ctx)
	if err != nil {
		return err
	}

	plan, err := services.PlanDeliveries(ctx, req, opts)
	if err != nil {
		return err
	}

	return out.WritePlan(ctx, plan)
}
