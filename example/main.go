package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deotya/unidrive"
	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/drives"
	"github.com/deotya/unidrive/log"
)

// Walks a navigation sequence over a fixed volume set, printing the session
// location after every command the way a transfer engine would report it.
func main() {
	ctx := context.Background()

	set := drives.NewStatic()
	set.Add(drives.DriveInfo{Letter: 'C', TotalSpace: 512 << 30, FreeSpace: 96 << 30})
	set.Add(drives.DriveInfo{Letter: 'D', TotalSpace: 2 << 40, FreeSpace: 1 << 40, Removable: true})

	ns, err := unidrive.NewNamespace(
		unidrive.WithEnumerator(set),
		unidrive.WithLogLevel(log.Warn),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize namespace: %v\n", err)
		os.Exit(1)
	}

	entries, err := ns.ReadDirectory(ctx, data.Sentinel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list root: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Volumes under /:")
	for _, entry := range entries {
		fmt.Printf("  %s (%d bytes)\n", entry.Name, entry.Size)
	}

	session := ns.OpenSession()
	defer ns.CloseSession(session.ID())

	for _, incoming := range []string{"/C", "Users", "..", ".."} {
		if err := session.Advance(ctx, incoming); err != nil {
			fmt.Fprintf(os.Stderr, "Navigation %q failed: %v\n", incoming, err)
			os.Exit(1)
		}

		fmt.Printf("cd %-8q -> pwd %-12s native %q\n", incoming, session.CurrentVirtual(), session.CurrentNative())
	}
}
