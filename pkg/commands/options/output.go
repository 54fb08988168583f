package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects how voyage reports command failures.
type OutputOptions struct {
	JSON bool
}

// AddOutputArg registers the --json flag.
func AddOutputArg(cmd *cobra.Command, oo *OutputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Report errors as a JSON object instead of plain text.")
}

// HandleError renders err per the selected output. With --json the error is
// printed as {"error": ...} and swallowed; otherwise it propagates for cobra
// to report.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
