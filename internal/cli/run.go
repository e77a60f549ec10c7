package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/edzius/tlvstore/internal/config"
	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/internal/property"
	"github.com/edzius/tlvstore/internal/registry"
	"github.com/edzius/tlvstore/pkg/region"
	flag "github.com/spf13/pflag"
)

// Run is tlvstore's process entry point. Returns the exit code.
func Run(_ io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	cfg, err := config.Load(config.LoadInput{Env: env})
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	if len(args) > 1 && (args[1] == "-h" || args[1] == "--help" || args[1] == "help") {
		printUsage(o, AllCommands(cfg))
		return 0
	}

	if len(args) > 1 && args[1] == "repl" {
		return ReplCmd(cfg).Run(context.Background(), o, args[2:])
	}

	return RootCmd(cfg).Run(context.Background(), o, args[1:])
}

func printUsage(o *IO, commands []*Command) {
	o.Println("tlvstore - TLV-backed EEPROM property store")
	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}

// RootCmd implements tlvstore's default operation: open/probe the store,
// then dispatch to list/get/set per spec §6's CLI surface.
func RootCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("tlvstore", flag.ContinueOnError)

	storeFile := flags.StringP("store-file", "F", cfg.StoreFile, "storage file path")
	storeSize := flags.IntP("store-size", "S", cfg.StoreSize, "preferred storage file size")
	force := flags.BoolP("force", "f", false, "reinitialize the region in place")
	compat := flags.BoolP("compat", "c", cfg.Compat, "treat \"unset\" as non-error in bulk export")
	get := flags.BoolP("get", "g", false, "dump values (all, if no keys)")
	set := flags.BoolP("set", "s", false, "write values (key=value or key=@file)")
	list := flags.BoolP("list", "l", false, "print available keys, one per line")

	return &Command{
		Flags: flags,
		Usage: "[options] <key>[=<value>] ...",
		Short: "read or write keyed properties in a TLV-backed EEPROM image",
		Exec: func(_ context.Context, o *IO, positional []string) error {
			if *storeFile == "" {
				return fmt.Errorf("cli: %w", errStoreFileRequired)
			}

			params, err := expandParams(positional)
			if err != nil {
				return err
			}

			reg, err := region.Open(*storeFile, *storeSize)
			if err != nil {
				return fmt.Errorf("cli: %w", err)
			}
			defer reg.Close()

			model, err := registry.Init(reg.Bytes(), *force)
			if err != nil {
				return fmt.Errorf("cli: %w", err)
			}
			defer registry.Close(model)

			facade := property.New(model)

			switch {
			case *list:
				facade.List(o)
				return nil
			case *get:
				return runGet(facade, params, o, *compat)
			case *set:
				return runSet(facade, params, o)
			default:
				return fmt.Errorf("cli: %w", errNoOperation)
			}
		},
	}
}

func runGet(facade *property.Facade, params []string, o *IO, compat bool) error {
	if len(params) == 0 {
		_, err := facade.GetAll(o)
		return err
	}

	var failures int

	for _, arg := range params {
		key, _, _ := strings.Cut(arg, "=")

		if _, err := facade.Get(arg, o); err != nil {
			if compat && errors.Is(err, datamodel.ErrUnset) {
				continue
			}

			o.ErrPrintln(fmt.Sprintf("failed to export %q: %v", key, err))
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("cli: %d export failures", failures)
	}

	return nil
}

func runSet(facade *property.Facade, params []string, o *IO) error {
	var failures int

	for _, arg := range params {
		key, _, _ := strings.Cut(arg, "=")

		if err := facade.Set(arg); err != nil {
			o.ErrPrintln(fmt.Sprintf("failed to import %q: %v", key, err))
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("cli: %d import failures", failures)
	}

	return nil
}

var (
	errStoreFileRequired = errors.New("storage file not specified")
	errNoOperation       = errors.New("no operation specified; one of --get/--set/--list is required")
)

// AllCommands lists every top-level command, for help output.
func AllCommands(cfg config.Config) []*Command {
	return []*Command{RootCmd(cfg), ReplCmd(cfg)}
}
