// Package view renders panel state as plain text for a terminal.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"shopadmin/internal/panel"
)

const rule = "────────────────────────────────────────────────────────"

// Login writes the sign-in screen with an optional status message.
func Login(w io.Writer, message string) error {
	ew := &errWriter{w: w}
	ew.printf("Admin Portal\n")
	ew.printf("Secure access to shopkeeper management\n")
	if message != "" {
		ew.printf("\n! %s\n", message)
	}
	return ew.err
}

// Dashboard writes the approval screen for snap.
func Dashboard(w io.Writer, snap panel.Snapshot) error {
	ew := &errWriter{w: w}
	ew.printf("Admin Dashboard\nShopkeeper Management System\n%s\n", rule)

	stats := tabwriter.NewWriter(ew, 0, 0, 3, ' ', 0)
	fmt.Fprintf(stats, "Total Pending\tSelected\tTotal Shops\n")
	fmt.Fprintf(stats, "%d\t%d\t%d\n", snap.TotalPending(), snap.SelectedCount(), snap.TotalShops())
	_ = stats.Flush()

	if snap.Message != "" {
		ew.printf("\n* %s\n", snap.Message)
	}

	toggle := "Select All"
	if snap.AllSelected() {
		toggle = "Deselect All"
	}
	ew.printf("\n[%s]  %d of %d selected", toggle, snap.SelectedCount(), snap.TotalPending())
	if snap.ActionLoading {
		ew.printf("  (working...)")
	}
	ew.printf("\n%s\n", rule)

	switch {
	case snap.Loading:
		ew.printf("Loading...\n")
	case len(snap.Shopkeepers) == 0:
		ew.printf("All Caught Up!\nNo unverified shopkeepers at the moment.\n")
	default:
		for i, sk := range snap.Shopkeepers {
			if i > 0 {
				ew.printf("\n")
			}
			box := "[ ]"
			if snap.IsSelected(sk.ID) {
				box = "[x]"
			}
			ew.printf("%s %s  @%s  (id %s)\n", box, sk.Name, sk.Username, sk.ID)
			ew.printf("    Phone:  %s\n", sk.Phone)
			ew.printf("    Joined: %s\n", sk.CreatedAt.Date())
			ew.printf("    Shops:  %d\n", len(sk.Shops))
			if len(sk.Shops) > 0 {
				ew.printf("    Shop Details:\n")
			}
			for _, shop := range sk.Shops {
				ew.printf("      - %s\n", shop.Name)
				ew.printf("        %s\n", orDash(shop.Tagline))
				ew.printf("        %s\n", orDash(shop.LocalArea))
			}
		}
	}
	return ew.err
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// errWriter remembers the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}
