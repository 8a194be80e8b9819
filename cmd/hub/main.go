package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	var args []string
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "serve":
		err = runServe(ctx)
	case "drafts":
		err = runDrafts(ctx, os.Stdout)
	case "posts":
		err = runPosts(ctx, os.Stdout)
	case "publish":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Usage: hub publish <draft-id>")
			os.Exit(1)
		}
		err = runPublish(ctx, os.Stdout, args[0])
	case "version":
		fmt.Printf("hub %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		errorf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hub - the Edurance Hub blog desk

Usage:
  hub [command] [arguments]

Commands:
  serve             Run the blog and admin panel (default)
  drafts            List saved drafts
  publish <id>      Publish a saved draft
  posts             List published posts, newest first
  version           Print the hub version
  help              Show this help message

Configuration is read from HUB_* environment variables and an optional .env file.`)
}
