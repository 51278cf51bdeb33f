package gantt

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/loader"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/schema"
)

func TestGenerateFromSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := loader.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	plan, err := Generate(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(plan.Bars) != 14 {
		t.Errorf("Expected 14 bars, got %d", len(plan.Bars))
	}
	if len(plan.Legend) != 2 {
		t.Errorf("Expected 2 legend entries, got %d", len(plan.Legend))
	}
	if plan.Background != "#1f2937" {
		t.Errorf("Expected default dark background, got %q", plan.Background)
	}

	// The two phases get the first two palette colors.
	for _, entry := range plan.Legend {
		if entry.Color == "" {
			t.Errorf("Phase %q has no color", entry.Phase)
		}
	}

	// Earliest task sits in the topmost slot.
	if plan.Bars[0].Slot != len(plan.Bars)-1 {
		t.Errorf("Earliest bar in slot %d, want %d", plan.Bars[0].Slot, len(plan.Bars)-1)
	}
}

func TestGenerateCustomTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := loader.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	opts := Options{
		Theme: &models.Theme{
			Background:  "#F8F9FA",
			Grid:        "#333",
			PhaseColors: map[string]string{"Phase 1": "#90C144"},
		},
		Palette: "classic",
	}
	plan, err := Generate(path, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Colors come back in canonical lowercase #rrggbb form.
	if plan.Background != "#f8f9fa" {
		t.Errorf("Background = %q", plan.Background)
	}
	if plan.GridColor != "#333333" {
		t.Errorf("GridColor = %q", plan.GridColor)
	}
	for _, entry := range plan.Legend {
		switch entry.Phase {
		case "Phase 1":
			if entry.Color != "#90c144" {
				t.Errorf("Phase 1 color = %q", entry.Color)
			}
		case "Phase 2":
			// First unclaimed classic palette slot, by phase order.
			if entry.Color != "#00b2d4" {
				t.Errorf("Phase 2 color = %q", entry.Color)
			}
		}
	}
}

func TestGenerateSchemaFailure(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "What")
	f.SetCellValue(sheet, "B1", "When")
	f.SetCellValue(sheet, "A2", "thing")
	f.SetCellValue(sheet, "B2", "1/1/2025")

	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	_, err := Generate(path, DefaultOptions())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate = %v, want *GenerationError", err)
	}
	if genErr.Stage != "schema" {
		t.Errorf("Stage = %q, want schema", genErr.Stage)
	}
	var schemaErr *schema.Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Cause %v is not a *schema.Error", genErr.Err)
	}
}

func TestGenerateMissingFile(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultOptions())
	if err == nil {
		t.Fatal("Generate succeeded on a missing file")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "load" {
		t.Errorf("Unexpected error: %v", err)
	}
}
