// Package cli implements the pagedots command-line interface.
//
// Commands are Cobra commands registered on rootCmd from init functions.
// Each command's RunE is a thin wrapper over a plain function (Init, Play,
// showConfig) so the logic can be tested without going through Cobra.
//
// # Command Structure
//
//	pagedots play              - Run the indicator full-screen
//	pagedots init              - Create .pagedots.yaml
//	pagedots config            - Print the resolved config as YAML
//	pagedots config set <k> <v> - Change one setting in place
//	pagedots version           - Print build information
//	pagedots completion <sh>   - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --no-color) live on the root command. play's
// flags override the loaded config only when they were set explicitly,
// which is tracked with cobra's Flags().Changed.
package cli
