package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isUnlocked() bool
	Touch()

	Unlock(ctx context.Context) error
	Lock(ctx context.Context) error

	List(ctx context.Context) error
	Counts(ctx context.Context) error
	Nav(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Mode(ctx context.Context, args []string) error

	Add(ctx context.Context) error
	AddBank(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
	Purge(ctx context.Context, args []string) error
	RestoreAll(ctx context.Context) error
	PurgeAll(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error

	Folders(ctx context.Context) error
	MkDir(ctx context.Context, args []string) error
	RenameDir(ctx context.Context, args []string) error
	RmDir(ctx context.Context, args []string) error

	Copy(ctx context.Context, args []string) error
	Totp(ctx context.Context, args []string) error
	Attach(ctx context.Context, args []string) error
	SaveAttachment(ctx context.Context, args []string) error
	RemoveAttachment(ctx context.Context, args []string) error

	Settings(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
	RestoreBackup(ctx context.Context, args []string) error
}

const helpUnlocked = `Available commands:
  (l)ist, counts, nav <all|fav|archive|trash|folder <id>>, search <text>,
  filter <attach|otp|notes|off>, sort <title|created|updated> <asc|desc>,
  mode <data|bank>, add, addbank, show <id>, edit <id>, del <id>,
  restore <id>, purge <id>, restoreall, purgeall, fav <id>, move <id> [folder],
  folders, mkdir <name> [parent], renamedir <id> <name>, rmdir <id> [cards],
  copy <id> <field>, totp <id>, attach <id> <path>, saveattach <id> <attid> <path>,
  rmattach <id> <attid>, settings [...], backup <path>, restorebackup <path>,
  lock, exit`

const helpLocked = `Available commands: unlock, exit`

// runREPL starts the read-eval-print loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vd %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		a.Touch()

		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn(helpUnlocked)
			} else {
				printlnFn(helpLocked)
			}

		case "unlock":
			_ = a.Unlock(ctx)
		case "lock":
			_ = a.Lock(ctx)

		case "l", "list":
			_ = a.List(ctx)
		case "counts":
			_ = a.Counts(ctx)
		case "nav":
			_ = a.Nav(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "filter":
			_ = a.Filter(ctx, args)
		case "sort":
			_ = a.Sort(ctx, args)
		case "mode":
			_ = a.Mode(ctx, args)

		case "add":
			_ = a.Add(ctx)
		case "addbank":
			_ = a.AddBank(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "edit":
			_ = a.Edit(ctx, args)
		case "del", "delete":
			_ = a.Delete(ctx, args)
		case "restore":
			_ = a.Restore(ctx, args)
		case "purge":
			_ = a.Purge(ctx, args)
		case "restoreall":
			_ = a.RestoreAll(ctx)
		case "purgeall":
			_ = a.PurgeAll(ctx)
		case "fav":
			_ = a.Favorite(ctx, args)
		case "move":
			_ = a.Move(ctx, args)

		case "folders":
			_ = a.Folders(ctx)
		case "mkdir":
			_ = a.MkDir(ctx, args)
		case "renamedir":
			_ = a.RenameDir(ctx, args)
		case "rmdir":
			_ = a.RmDir(ctx, args)

		case "copy":
			_ = a.Copy(ctx, args)
		case "totp":
			_ = a.Totp(ctx, args)
		case "attach":
			_ = a.Attach(ctx, args)
		case "saveattach":
			_ = a.SaveAttachment(ctx, args)
		case "rmattach":
			_ = a.RemoveAttachment(ctx, args)

		case "settings":
			_ = a.Settings(ctx, args)
		case "backup":
			_ = a.Backup(ctx, args)
		case "restorebackup":
			_ = a.RestoreBackup(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
