package cmd

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core/render"
	"github.com/spf13/pflag"
)

// formatFlag is the --format value; it only accepts known formats.
type formatFlag render.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return string(*f)
}

func (f *formatFlag) Set(s string) error {
	for _, known := range render.Formats {
		if strings.EqualFold(s, string(known)) {
			*f = formatFlag(known)
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", formatList())
}

func (f *formatFlag) Type() string {
	return "format"
}

func formatList() string {
	names := make([]string, len(render.Formats))
	for i, format := range render.Formats {
		names[i] = string(format)
	}
	return strings.Join(names, "|")
}
