package decode

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/semhl/pkg/highlight"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	file string
	fs   afero.Fs
}

// NewDecodeCommand decodes per-line token payloads back into readable
// (start, length, kind) records. Payloads come from the arguments, or
// one per line from --file.
func NewDecodeCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "decode [payload...]",
		Short: "decode base64 token payloads into readable records",
	}

	cmd.Flags().StringVar(&me.file, "file", "", "read payloads from a file, one per line")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd, args)
	}

	return cmd
}

func (me *Handler) Run(cmd *cobra.Command, args []string) error {
	payloads := args

	if me.file != "" {
		raw, err := afero.ReadFile(me.fs, me.file)
		if err != nil {
			return errors.Errorf("reading %s: %w", me.file, err)
		}
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				payloads = append(payloads, line)
			}
		}
	}

	if len(payloads) == 0 {
		return errors.New("no payloads given")
	}

	for i, payload := range payloads {
		records, err := highlight.DecodeLine(payload)
		if err != nil {
			return errors.Errorf("payload %d: %w", i, err)
		}
		cmd.Printf("payload %d (%d records):\n", i, len(records))
		for _, rec := range records {
			cmd.Printf("  start=%-6d length=%-4d kind=%d (%s)\n", rec.Start, rec.Length, uint16(rec.Kind), rec.Kind)
		}
	}

	return nil
}
