package snapstore

import (
	"fmt"

	"github.com/codegauge/codegauge/schema"
)

// PrintStoreStatus prints snapshot store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Total Snapshots: %d\n", status.SnapshotCount)
	if status.SnapshotCount > 0 {
		fmt.Printf("Latest Snapshot: %s\n", status.LatestSnapshot.Format("2006-01-02 15:04:05"))
	}
}
