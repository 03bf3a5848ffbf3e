// Package display renders user-facing warning blocks for the projcheck CLI.
//
// Warnings go to stderr and never mix with the report on stdout:
//
//	warning := display.Warning{
//	    Title:      "No files under Development/Src matched the given patterns",
//	    Message:    "Nothing was checked against the manifests",
//	    Suggestion: "Quote patterns such as \"*.uc\" so the shell does not expand them",
//	    Color:      true,
//	}
//	warning.Display(os.Stderr)
package display
