package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Core
	Analysis = "v1.0.0"

	// Modular tools
	Benchmark     = "v1.1.0"
	Seq_Analyzer  = "v1.0.0"
	Batch_Report  = "v1.0.0"
	Dir_Watcher   = "v1.0.0"
	Web_Server    = "v1.0.0"
	Seq_Generator = "v2.1.0" // Formerly "Ran_DNA_Gen"
	Sanity_check  = "v1.0.0"
)

// Versions lists every component version, for the about endpoint.
func Versions() map[string]string {
	return map[string]string{
		"dna_analyzer":  Main_version,
		"analysis":      Analysis,
		"benchmark":     Benchmark,
		"seq_analyzer":  Seq_Analyzer,
		"batch_report":  Batch_Report,
		"dir_watcher":   Dir_Watcher,
		"web_server":    Web_Server,
		"seq_generator": Seq_Generator,
		"sanity_check":  Sanity_check,
	}
}
