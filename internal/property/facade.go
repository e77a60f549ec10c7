package property

import (
	"fmt"
	"os"
	"strings"

	"github.com/edzius/tlvstore/internal/datamodel"
)

// Facade adapts a resolved datamodel.Model to the CLI's get/set/list
// surface, applying spec §4.G's value-source conventions.
type Facade struct {
	Model datamodel.Model
}

// New returns a Facade over an already-Init'd model.
func New(m datamodel.Model) *Facade {
	return &Facade{Model: m}
}

// List writes every available key name, one per line, to out.
func (f *Facade) List(out datamodel.Printer) {
	f.Model.List(out)
}

// GetAll dumps every occupied property to out.
func (f *Facade) GetAll(out datamodel.Printer) (int, error) {
	return f.Model.Print("", out)
}

// Get resolves a single --get argument, either a bare "KEY" (written to
// stdout) or "KEY=dest" where dest names an output file, per spec §4.G. A
// leading '@' in dest is stripped; a dest without it is also used as the
// file path.
func (f *Facade) Get(arg string, stdout datamodel.Printer) (int, error) {
	key, dest, hasDest := strings.Cut(arg, "=")
	if !hasDest {
		return f.Model.Print(key, stdout)
	}

	path := strings.TrimPrefix(dest, "@")

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("property: create %q: %w", path, err)
	}
	defer file.Close()

	return f.Model.Print(key, fileWriter{file})
}

// Set resolves a single --set argument, "KEY=value" or "KEY=@file", per
// spec §4.G: a leading '@' in the value names the input file.
func (f *Facade) Set(arg string) error {
	key, value, hasValue := strings.Cut(arg, "=")
	if !hasValue {
		return fmt.Errorf("%s: %w", key, ErrMissingValue)
	}

	data, err := readSource(value)
	if err != nil {
		return err
	}

	return f.Model.Store(key, data)
}

// Check validates arg the same way Set would, without writing it.
func (f *Facade) Check(arg string) error {
	key, value, hasValue := strings.Cut(arg, "=")
	if !hasValue {
		return f.Model.Check(key, nil)
	}

	data, err := readSource(value)
	if err != nil {
		return err
	}

	return f.Model.Check(key, data)
}

func readSource(value string) ([]byte, error) {
	if !strings.HasPrefix(value, "@") {
		return []byte(value), nil
	}

	path := value[1:]

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("property: read %q: %w", path, err)
	}

	return b, nil
}

type fileWriter struct {
	f *os.File
}

func (w fileWriter) WriteString(s string) (int, error) {
	return w.f.WriteString(s)
}
