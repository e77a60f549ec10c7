package property

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edzius/tlvstore/internal/datamodel"
)

// fakeModel is a minimal in-memory datamodel.Model for exercising the
// façade's value-source resolution independent of any real layout.
type fakeModel struct {
	values map[string]string
}

func newFakeModel() *fakeModel {
	return &fakeModel{values: map[string]string{}}
}

func (m *fakeModel) Name() string                    { return "fake" }
func (m *fakeModel) Init(_ []byte, _ bool) error      { return nil }
func (m *fakeModel) List(out datamodel.Printer)       { _, _ = out.WriteString("KEY\n") }
func (m *fakeModel) Check(key string, _ []byte) error { return nil }

func (m *fakeModel) Print(key string, out datamodel.Printer) (int, error) {
	if key == "" {
		total := 0
		for k, v := range m.values {
			n, _ := out.WriteString(k + "=" + v + "\n")
			total += n
		}
		return total, nil
	}

	v, ok := m.values[key]
	if !ok {
		return 0, datamodel.ErrUnset
	}

	return out.WriteString(v)
}

func (m *fakeModel) Store(key string, in []byte) error {
	m.values[key] = string(in)
	return nil
}

func (m *fakeModel) Flush() error { return nil }

func Test_Set_Literal_Value(t *testing.T) {
	m := newFakeModel()
	f := New(m)

	if err := f.Set("KEY=hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got, want := m.values["KEY"], "hello"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_Set_Missing_Value_Fails(t *testing.T) {
	m := newFakeModel()
	f := New(m)

	if err := f.Set("KEY"); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("err=%v, want ErrMissingValue", err)
	}
}

func Test_Set_At_File_Reads_File_Contents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "value.bin")

	if err := os.WriteFile(path, []byte("from-file"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := newFakeModel()
	f := New(m)

	if err := f.Set("KEY=@" + path); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got, want := m.values["KEY"], "from-file"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_Get_Bare_Key_Writes_To_Stdout(t *testing.T) {
	m := newFakeModel()
	m.values["KEY"] = "value"
	f := New(m)

	var buf bytes.Buffer
	if _, err := f.Get("KEY", &buf); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got, want := buf.String(), "value"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_Get_At_File_Writes_Destination_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	m := newFakeModel()
	m.values["KEY"] = "dumped"
	f := New(m)

	var stdout bytes.Buffer
	if _, err := f.Get("KEY=@"+path, &stdout); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if stdout.Len() != 0 {
		t.Fatalf("expected nothing written to stdout, got %q", stdout.String())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != "dumped" {
		t.Fatalf("got=%q, want=%q", got, "dumped")
	}
}

func Test_Get_Unset_Key_Returns_ErrUnset(t *testing.T) {
	m := newFakeModel()
	f := New(m)

	var buf bytes.Buffer
	if _, err := f.Get("KEY", &buf); !errors.Is(err, datamodel.ErrUnset) {
		t.Fatalf("err=%v, want ErrUnset", err)
	}
}

func Test_GetAll_Dumps_Every_Property(t *testing.T) {
	m := newFakeModel()
	m.values["A"] = "1"
	f := New(m)

	var buf bytes.Buffer
	if _, err := f.GetAll(&buf); err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	if got, want := buf.String(), "A=1\n"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}
