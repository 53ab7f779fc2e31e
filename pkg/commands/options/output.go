package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/validate"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as JSON when asked to, listing any field errors
// separately.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]interface{}{
			"error": err.Error(),
		}
		if fields := fieldErrors(err); len(fields) > 0 {
			out["fields"] = fields
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

func fieldErrors(err error) map[string]string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	fields := make(map[string]string)
	for _, e := range joined.Unwrap() {
		var ve *validate.Error
		if errors.As(e, &ve) && ve.Field != "" {
			fields[ve.Field] = ve.Message
		}
	}
	return fields
}
