package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cloudvault/cli/internal/api"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// Listing prints folders followed by files as a human-readable table.
func Listing(folders, files []api.Entry) {
	if len(folders) == 0 && len(files) == 0 {
		fmt.Println("No entries found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tTYPE\tMODIFIED")

	for _, f := range folders {
		fmt.Fprintf(w, "%s/\t-\tdir\t%s\n", f.Name, RelativeTime(f.UpdatedAt))
	}
	for _, f := range files {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, FormatSize(f.Size), shortMIME(f.MimeType), RelativeTime(f.UpdatedAt))
	}
	w.Flush()
}

// EntryDetail prints a single entry's details.
func EntryDetail(e api.Entry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", e.Name)
	fmt.Fprintf(w, "ID:\t%s\n", e.ID)
	if e.MimeType != "" {
		fmt.Fprintf(w, "Type:\t%s\n", e.MimeType)
		fmt.Fprintf(w, "Size:\t%s\n", FormatSize(e.Size))
	}
	if e.ParentID != nil {
		fmt.Fprintf(w, "Parent ID:\t%s\n", *e.ParentID)
	}
	if e.SharePermission != "" {
		fmt.Fprintf(w, "Shared:\t%s\n", e.SharePermission)
	}
	if e.InTrash() {
		fmt.Fprintf(w, "Deleted:\t%s\n", e.DeletedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Created:\t%s\n", e.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Modified:\t%s\n", e.UpdatedAt.Format(time.RFC3339))
	w.Flush()
}

// UserInfo prints user details.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	w.Flush()
}

// FormatSize converts bytes to a human-readable string.
func FormatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago", "3d ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func shortMIME(mime string) string {
	// "application/pdf" -> "pdf", "image/png" -> "png"
	parts := strings.Split(mime, "/")
	if len(parts) == 2 {
		s := parts[1]
		// strip "vnd.openxmlformats..." prefixes
		if idx := strings.LastIndex(s, "."); idx >= 0 {
			s = s[idx+1:]
		}
		return s
	}
	return mime
}
