package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Print writes the result as indented JSON to out, for scripting, and a
// human-readable summary to diag.
func Print(out, diag io.Writer, result *Result) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("Unable to write result: %w", err)
	}

	fmt.Fprintln(diag, "\n✓ Test user created successfully!")
	fmt.Fprintf(diag, "  Username: %v\n", result.Username)
	fmt.Fprintf(diag, "  Password: %v\n", result.Password)
	fmt.Fprintf(diag, "  Language: %v\n", result.Language)

	if result.Vendor != nil {
		fmt.Fprintf(diag, "  Vendor: %v\n", *result.Vendor)
	}
	if result.Product != nil {
		fmt.Fprintf(diag, "  Product: %v\n", *result.Product)
	}

	return nil
}
