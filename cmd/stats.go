package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpetrov/caliber/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engine statistics from the latest snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath, nil)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		logged, err := st.EventRepo().AttemptCount(ctx)
		if err != nil {
			return fmt.Errorf("count attempts: %w", err)
		}

		if snap == nil {
			fmt.Println("no snapshot saved yet")
			fmt.Printf("attempt events logged: %d\n", logged)
			return nil
		}

		fmt.Printf("snapshot taken:    %s\n", snap.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Printf("users:             %d\n", len(snap.Data.Users))
		fmt.Printf("items:             %d\n", len(snap.Data.Items))
		fmt.Printf("attempts in state: %d\n", snap.Data.TotalAttempts)
		fmt.Printf("attempt events:    %d\n", logged)
		return nil
	},
}
