// Command autotiled is the autotiling daemon: it connects to the X11
// session, runs the tiling engine, and optionally exposes an MCP tool
// surface and an interactive state viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autotiled <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon            Connect to X11 and run the autotile engine (foreground)")
	fmt.Fprintln(w, "  tui               Open the interactive tiling-state viewer (runs its own engine on a separate X11 connection)")
	fmt.Fprintln(w, "  mcp serve         Start the MCP server on stdio, attached to a live engine")
	fmt.Fprintln(w, "  config print      Print the effective daemon configuration")
	fmt.Fprintln(w, "  config validate   Validate the daemon configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'autotiled <command> -h' for command-specific options.")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: autotiled config <print|validate>")
		return 2
	}
	switch args[0] {
	case "print":
		return runConfigPrint(args[1:])
	case "validate":
		return runConfigValidate(args[1:])
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, "Usage: autotiled config <print|validate>")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func runConfigPrint(args []string) int {
	fs := flag.NewFlagSet("config print", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/autotiled/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	result, err := loadDaemonConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := result.Config.Autotile.ToJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("source: %s\n", result.Source.Kind)
	fmt.Println(string(data))
	return 0
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("config validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/autotiled/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if _, err := loadDaemonConfig(*path); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 1
	}
	fmt.Println("configuration is valid")
	return 0
}
