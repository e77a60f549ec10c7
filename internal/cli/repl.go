package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edzius/tlvstore/internal/config"
	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/internal/property"
	"github.com/edzius/tlvstore/internal/registry"
	"github.com/edzius/tlvstore/pkg/region"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

// ReplCmd launches the interactive session, grounded on cmd/sloty's REPL
// loop: a liner-backed prompt dispatching single-word commands.
func ReplCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("tlvstore repl", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "repl",
		Short: "interactive session for opening a store and running get/set/list",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			r := &replSession{cfg: cfg, out: o}
			return r.run()
		},
	}
}

type replSession struct {
	cfg   config.Config
	out   *IO
	liner *liner.State

	region *region.Region
	model  datamodel.Model
	facade *property.Facade
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".tlvstore_history")
}

func (r *replSession) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		f.Close()
	}

	r.out.Println("tlvstore - interactive session. Type 'help' for commands.")

	defer r.closeStore()

	for {
		line, err := r.liner.Prompt("tlvstore> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.out.Println("Bye!")
				break
			}

			return fmt.Errorf("cli: reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		fields := strings.Fields(line)
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.out.Println("Bye!")
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp()
		case "open":
			r.cmdOpen(args)
		case "close":
			r.cmdClose()
		case "get":
			r.cmdGet(args)
		case "set":
			r.cmdSet(args)
		case "list":
			r.cmdList()
		default:
			r.out.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *replSession) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *replSession) printHelp() {
	r.out.Println("Commands:")
	r.out.Println("  open <file> [size] [force]   open or create a store")
	r.out.Println("  close                        flush and close the current store")
	r.out.Println("  get [key[=dest]]             print a key, or dump all keys")
	r.out.Println("  set <key>=<value|@file>      write a key")
	r.out.Println("  list                         list available keys")
	r.out.Println("  exit                         quit the session")
}

func (r *replSession) cmdOpen(args []string) {
	if len(args) == 0 {
		r.out.Println("usage: open <file> [size] [force]")
		return
	}

	r.closeStore()

	path := args[0]
	size := r.cfg.StoreSize
	force := false

	for _, extra := range args[1:] {
		if extra == "force" {
			force = true
			continue
		}

		if n, err := strconv.Atoi(extra); err == nil {
			size = n
		}
	}

	reg, err := region.Open(path, size)
	if err != nil {
		r.out.Printf("open failed: %v\n", err)
		return
	}

	model, err := registry.Init(reg.Bytes(), force)
	if err != nil {
		r.out.Printf("probe failed: %v\n", err)
		_ = reg.Close()

		return
	}

	r.region = reg
	r.model = model
	r.facade = property.New(model)

	r.out.Printf("opened %s (%s)\n", path, model.Name())
}

func (r *replSession) cmdClose() {
	if r.facade == nil {
		r.out.Println("no store open")
		return
	}

	r.closeStore()
	r.out.Println("closed")
}

func (r *replSession) closeStore() {
	if r.model != nil {
		_ = registry.Close(r.model)
		r.model = nil
	}

	if r.region != nil {
		_ = r.region.Close()
		r.region = nil
	}

	r.facade = nil
}

func (r *replSession) cmdGet(args []string) {
	if r.facade == nil {
		r.out.Println("no store open")
		return
	}

	if len(args) == 0 {
		if _, err := r.facade.GetAll(r.out); err != nil {
			r.out.Printf("get failed: %v\n", err)
		}

		return
	}

	for _, arg := range args {
		key, _, _ := strings.Cut(arg, "=")

		r.out.Printf("%s=", key)

		if _, err := r.facade.Get(arg, r.out); err != nil {
			r.out.Printf("<error: %v>", err)
		}

		r.out.Println()
	}
}

func (r *replSession) cmdSet(args []string) {
	if r.facade == nil {
		r.out.Println("no store open")
		return
	}

	for _, arg := range args {
		if err := r.facade.Set(arg); err != nil {
			r.out.Printf("set %q failed: %v\n", arg, err)
		}
	}
}

func (r *replSession) cmdList() {
	if r.facade == nil {
		r.out.Println("no store open")
		return
	}

	r.facade.List(r.out)
}
