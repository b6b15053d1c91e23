package render

import (
	"fmt"
	"time"

	fsutil "github.com/dunefm/dune/internal/fs"
)

// Fixed column widths for the metadata block on the right of each file row.
const (
	sizeColumnWidth  = 9
	dateColumnWidth  = 10
	permsColumnWidth = 11
)

func formatSize(entry fsutil.Entry) string {
	if entry.Kind == fsutil.KindDirectory {
		return "-"
	}
	return formatByteCount(entry.Size)
}

func formatByteCount(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	for _, suffix := range []string{"KiB", "MiB", "GiB", "TiB"} {
		value /= unit
		if value < unit || suffix == "TiB" {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%d B", n)
}

func formatModified(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatPermissions(entry fsutil.Entry) string {
	var kindChar byte
	switch entry.Kind {
	case fsutil.KindDirectory:
		kindChar = 'd'
	case fsutil.KindSymlink:
		kindChar = 'l'
	case fsutil.KindOther:
		kindChar = '?'
	default:
		kindChar = '-'
	}

	perms := []byte("rwxrwxrwx")
	mode := entry.Mode.Perm()
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) == 0 {
			perms[i] = '-'
		}
	}
	return fmt.Sprintf("%c %s", kindChar, perms)
}
