package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/tchung/gcpfree/internal/gcloud"
	"github.com/tchung/gcpfree/internal/image"
)

// TableFormatter formats resources as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatInstances formats the instance table the way gcloud prints it.
func (f *TableFormatter) FormatInstances(instances []gcloud.Instance) (string, error) {
	if len(instances) == 0 {
		return "Listed 0 items.\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tZONE\tMACHINE_TYPE\tINTERNAL_IP\tEXTERNAL_IP\tSTATUS")
	}

	for _, inst := range instances {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inst.Name, inst.Zone, inst.MachineType,
			orDash(inst.InternalIP), orDash(inst.ExternalIP), inst.Status)
	}

	_ = w.Flush()
	return buf.String(), nil
}

// FormatImages formats the image catalog as a numbered list with the
// configured default marked.
func (f *TableFormatter) FormatImages(entries []image.Entry) (string, error) {
	if len(entries) == 0 {
		return "No images found\n", nil
	}

	var buf bytes.Buffer
	for i, entry := range entries {
		buf.WriteString(image.Format(i+1, entry))
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
