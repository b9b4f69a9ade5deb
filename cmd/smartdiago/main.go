package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard"
	"github.com/careers2017uae-bot/SmartDiago/internal/config"
	"github.com/careers2017uae-bot/SmartDiago/internal/logging"
	"github.com/careers2017uae-bot/SmartDiago/internal/report"
	"github.com/careers2017uae-bot/SmartDiago/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		runWizard(fromConfig)
		os.Exit(0)
	}

	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load a session from a YAML file and render the report headlessly")
	output := flag.String("output", "", "Report output path (default: <PatientName>_Report.pdf)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// Handle interactive mode
	if *interactive {
		runWizard("")
		os.Exit(0)
	}

	// Handle headless render from a saved session
	if *configFile != "" {
		renderFromSession(*configFile, *output)
		os.Exit(0)
	}

	// Show version
	if *showVersion {
		fmt.Printf("smartdiago %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	printHelp()
}

// runWizard starts the interactive workflow, optionally restoring a
// saved session first.
func runWizard(fromConfig string) {
	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := wizard.Run(fromConfig, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderFromSession loads a saved session YAML and writes its PDF
// report without starting the TUI.
func renderFromSession(configFile, output string) {
	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	sess, err := wizard.LoadFromYAML(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		output = util.ReportFileName(sess.Patient.Name)
	}

	fmt.Println("smartdiago")
	fmt.Println("==========")
	fmt.Printf("Loading session from %s\n\n", configFile)

	entries := sess.Timeline.AutoPopulateIfEmpty(sess.Stages)
	data, err := report.Render(sess.Patient, entries, sess.Uploads.Items(), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Report generated!")
	fmt.Printf("  File: %s\n", output)
}

func printHelp() {
	fmt.Println("smartdiago")
	fmt.Println("==========")
	fmt.Println()
	fmt.Println("Guided clinical workflow: capture a patient profile and symptoms,")
	fmt.Println("run AI diagnostic checkpoints, attach test results, and render a")
	fmt.Println("PDF patient report.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  smartdiago -i                          Launch the interactive wizard")
	fmt.Println("  smartdiago wizard [--from <FILE>]      Launch the wizard, optionally from a saved session")
	fmt.Println("  smartdiago --config <FILE> [options]   Render a report from a saved session")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <FILE>       Session YAML to render headlessly")
	fmt.Println("  --output <FILE>       Report output path (default: <PatientName>_Report.pdf)")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  GROQ_API_KEY          API key for the AI checkpoints (required for generation)")
	fmt.Println("  SMARTDIAGO_MODEL      Completion model (default: grok-beta)")
	fmt.Println("  SMARTDIAGO_ENDPOINT   Completion endpoint URL")
	fmt.Println("  SMARTDIAGO_TIMEOUT    Completion timeout in seconds (default: 30)")
	fmt.Println("  SMARTDIAGO_LOG_LEVEL  Log level: debug, info, warn, error (default: info)")
	fmt.Println("  SMARTDIAGO_LOG_FILE   Log file path (default: smartdiago.log)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Start a fresh session")
	fmt.Println("  smartdiago -i")
	fmt.Println()
	fmt.Println("  # Resume a saved session")
	fmt.Println("  smartdiago wizard --from session.yaml")
	fmt.Println()
	fmt.Println("  # Render the report for a saved session without the TUI")
	fmt.Println("  smartdiago --config session.yaml --output Jane_Doe_Report.pdf")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  The report contains the patient information block, every committed")
	fmt.Println("  timeline block in commit order, the uploaded-results listing and a")
	fmt.Println("  medical disclaimer. An empty timeline auto-populates the four core")
	fmt.Println("  blocks from the current stage contents.")
}
