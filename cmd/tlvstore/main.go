// Command tlvstore reads and writes keyed properties in a TLV-backed
// EEPROM image, per spec §6's CLI surface.
package main

import (
	"os"
	"strings"

	"github.com/edzius/tlvstore/internal/cli"

	_ "github.com/edzius/tlvstore/internal/datamodel/firmuxfields"
	_ "github.com/edzius/tlvstore/internal/datamodel/firmuxtlv"
	_ "github.com/edzius/tlvstore/internal/datamodel/legacytlv"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
