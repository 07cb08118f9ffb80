package main

import (
	"fmt"
	"os"
	"strings"

	"dna_analyzer_go/benchmark"
	"dna_analyzer_go/config"
	"dna_analyzer_go/tools/batch_report"
	"dna_analyzer_go/tools/dir_watcher"
	"dna_analyzer_go/tools/sanity_check"
	"dna_analyzer_go/tools/seq_analyzer"
	"dna_analyzer_go/tools/seq_generator"
	"dna_analyzer_go/tools/web_server"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`DNA Analyzer - Custom Help Menu
Usage:
  dna_analyzer <tool> [options]

Tools:
  analyze		Length, GC content, translation and reverse complement of one sequence
  batch			Per-record analysis and summary report of a multi-FASTA file
  watch			Analyze new sequence files as they appear in a folder
  serve			HTTP API (JSON/msgpack) with analysis history and live stream
  ran_dna_gen		Generate random DNA sequence
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information

Environment (watch, serve; also read from .env):
  DNA_PORT, DNA_LOG_LEVEL, DNA_LOG_PRETTY, DNA_DEV_MODE,
  DNA_WATCH_DIR, DNA_WATCH_INTERVAL, DNA_WATCH_EXTENSIONS,
  DNA_HISTORY_SIZE, DNA_HISTORY_VIEW, DNA_MAX_SEQUENCE_LENGTH,
  DNA_MAX_UPLOAD_BYTES
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("DNA Analyzer - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tDNA Analyzer:\t\t%s\n", config.Main_version)
	fmt.Printf("\tAnalysis Core:\t\t%s\n", config.Analysis)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tSequence Analyzer:\t%s\n", config.Seq_Analyzer)
	fmt.Printf("\tBatch Report:\t\t%s\n", config.Batch_Report)
	fmt.Printf("\tDirectory Watcher:\t%s\n", config.Dir_Watcher)
	fmt.Printf("\tWeb Server:\t\t%s\n", config.Web_Server)
	fmt.Printf("\tRandom DNA Generator:\t%s\n", config.Seq_Generator)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	if len(os.Args) < 3 {
		arg := os.Args[1]
		if arg == "-h" || arg == "-help" {
			printCustomHelp()
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "analyze":
			seq_analyzer.Run(cleanedArgs)
		case "batch":
			batch_report.Run(cleanedArgs)
		case "watch":
			dir_watcher.Run(cleanedArgs)
		case "serve":
			web_server.Run(cleanedArgs)
		case "ran_dna_gen":
			seq_generator.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("dna_analyzer %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
