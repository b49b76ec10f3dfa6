package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRegistryPlainText(t *testing.T) {
	r := NewRegistry()

	got, err := r.Extract("notes.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Extract = %q, want %q", got, "hello world")
	}
}

func TestRegistryCSV(t *testing.T) {
	r := NewRegistry()

	in := "name,age\nalice,30\nbob,41\n"
	got, err := r.Extract("people.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := "name, age\nalice, 30\nbob, 41\n"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestRegistryCSVRaggedRows(t *testing.T) {
	r := NewRegistry()

	in := "a,b,c\nd,e\n"
	got, err := r.Extract("ragged.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "a, b, c\nd, e\n" {
		t.Errorf("Extract = %q", got)
	}
}

func TestRegistryUnsupported(t *testing.T) {
	r := NewRegistry()

	if r.Supported("archive.zip") {
		t.Errorf("Supported(archive.zip) = true, want false")
	}

	_, err := r.Extract("archive.zip", strings.NewReader("PK"))
	var unsupported *ErrUnsupportedType
	if !errors.As(err, &unsupported) {
		t.Fatalf("Extract error = %v, want ErrUnsupportedType", err)
	}
	if unsupported.Extension != ".zip" {
		t.Errorf("Extension = %q, want .zip", unsupported.Extension)
	}
}

func TestRegistryExcel(t *testing.T) {
	r := NewRegistry()

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "name")
	f.SetCellValue("Sheet1", "B1", "age")
	f.SetCellValue("Sheet1", "A2", "alice")
	f.SetCellValue("Sheet1", "B2", 30)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	got, err := r.Extract("people.xlsx", buf)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "name age\nalice 30\n" {
		t.Errorf("Extract = %q", got)
	}
}

func TestRegistryExcelRejectsGarbage(t *testing.T) {
	r := NewRegistry()

	if !r.Supported("sheet.xlsx") {
		t.Fatal("Supported(sheet.xlsx) = false, want true")
	}
	if _, err := r.Extract("sheet.xlsx", strings.NewReader("not a workbook")); err == nil {
		t.Error("Extract on garbage xlsx succeeded, want error")
	}
}

func TestRegistryPDFRejectsGarbage(t *testing.T) {
	r := NewRegistry()

	if !r.Supported("report.pdf") {
		t.Fatal("Supported(report.pdf) = false, want true")
	}
	if _, err := r.Extract("report.pdf", strings.NewReader("not a pdf")); err == nil {
		t.Error("Extract on garbage pdf succeeded, want error")
	}
}

func TestRegistryCaseInsensitiveExtension(t *testing.T) {
	r := NewRegistry()
	if !r.Supported("NOTES.TXT") {
		t.Errorf("Supported(NOTES.TXT) = false, want true")
	}
}
