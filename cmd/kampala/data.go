package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"kampala_finance_backend/internal/services"

	"github.com/google/subcommands"
	"github.com/spf13/afero"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the document as JSON" }
func (*exportCmd) Usage() string {
	return `kampala export [-o <file>]

  Writes the whole document as indented JSON to stdout or to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	text, err := store.ExportData(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		fmt.Println(text)
		return subcommands.ExitSuccess
	}
	if err := afero.WriteFile(fsys, c.output, []byte(text), 0o644); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Exported to", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the document with an exported file" }
func (*importCmd) Usage() string {
	return `kampala import <file>

  Replaces the stored document with the content of file. Nothing changes if file is not a valid document.
`
}
func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file.")
		return subcommands.ExitUsageError
	}
	data, err := afero.ReadFile(fsys, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	if err := store.ImportData(ctx, string(data)); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Imported", f.Arg(0))
	return subcommands.ExitSuccess
}

type backupCmd struct {
	dir string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a dated backup file" }
func (*backupCmd) Usage() string {
	return `kampala backup [-o <dir>]

  Writes kampala-backup-<date>.json into dir (default: current directory).
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "o", ".", "Directory to write the backup into.")
}

func (c *backupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	backup, err := store.CreateBackup(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	name, err := writeJSON(c.dir, services.BackupFilename(backup.BackedUpAt), backup)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Backup written to", name)
	return subcommands.ExitSuccess
}

// writeJSON writes v as indented JSON to dir/filename and returns the path.
func writeJSON(dir, filename string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := filepath.Join(dir, filename)
	return name, afero.WriteFile(fsys, name, data, 0o644)
}

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the document with a backup file" }
func (*restoreCmd) Usage() string {
	return `kampala restore <file>

  Restores a backup. The file must contain users, transactions and settings.
`
}
func (*restoreCmd) SetFlags(*flag.FlagSet) {}

func (*restoreCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: restore takes exactly one file.")
		return subcommands.ExitUsageError
	}
	file, err := fsys.Open(f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	if err := store.RestoreBackup(ctx, file); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Restored", f.Arg(0))
	return subcommands.ExitSuccess
}
