package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viremo/viremo-be/internal/client/api"
	"github.com/viremo/viremo-be/internal/client/cli"
	"github.com/viremo/viremo-be/internal/client/recall"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Viremo server address")
	flag.Parse()

	recallStore, err := recall.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not resolve config directory:", err)
		os.Exit(1)
	}

	client := api.New(*addr)
	reader := bufio.NewReader(os.Stdin)
	app := cli.NewApp(client, recallStore, reader, os.Stdout)

	fmt.Println("Viremo. Type 'help' for commands.")
	cli.Run(context.Background(), app, reader)
}
