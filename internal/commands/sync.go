package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/msgsource"
	"github.com/khata-dev/khata/internal/syncer"
	"github.com/khata-dev/khata/internal/synclog"
)

func newSyncCommand(dataDir *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync bank-message history into the ledger",
		Long: `Sync parses bank notification dumps and admits each message at most
once, keyed by its source identity. Re-running over the same history is
safe: duplicates are skipped, never re-inserted.

With --file a single dump is synced in place. Without it, every CSV in
<data>/inbox is synced and moved to <data>/inbox/processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			if file != "" {
				return syncOne(a, file)
			}
			return syncInbox(a)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "sync a single message dump instead of the inbox")

	return cmd
}

func syncOne(a *app, path string) error {
	msgs, err := msgsource.ReadFile(path)
	if err != nil {
		return err
	}

	rep, err := a.newSyncer().SyncHistory(msgs)
	if err != nil {
		return err
	}

	if err := synclog.Append(a.dataDir, []synclog.Entry{{
		Timestamp:   time.Now(),
		Source:      path,
		Scanned:     rep.Scanned,
		Admitted:    rep.Admitted,
		Duplicates:  rep.Duplicates,
		Unparseable: rep.Unparseable,
	}}); err != nil {
		return err
	}

	printReport(path, rep)
	return nil
}

func syncInbox(a *app) error {
	files, err := msgsource.Scan(a.inboxPath())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Inbox empty, nothing to sync.")
		return nil
	}

	for _, f := range files {
		if err := syncOne(a, f.Path); err != nil {
			return err
		}
		if err := msgsource.MarkProcessed(a.inboxPath(), f.Name); err != nil {
			return err
		}
	}
	return nil
}

func printReport(source string, rep syncer.Report) {
	fmt.Printf("%s: scanned %d, admitted %d, duplicates %d, unparseable %d\n",
		source, rep.Scanned, rep.Admitted, rep.Duplicates, rep.Unparseable)
}
