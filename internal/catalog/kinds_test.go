package catalog

import "testing"

func TestResolveRepairTypes(t *testing.T) {
	tests := []struct {
		category string
		expected []RepairKind
	}{
		{"phone", []RepairKind{SoftwareRepair, ScreenRepair, BatteryReplacement, BackGlassRepair, CameraRepair, SpeakerRepair}},
		{"tablet", []RepairKind{SoftwareRepair, ScreenRepair, BatteryReplacement, BackGlassRepair, CameraRepair, SpeakerRepair}},
		{"laptop", []RepairKind{SoftwareRepair, ScreenRepair, BatteryReplacement, KeyboardRepair, MotherboardRepair, SpeakerRepair}},
		{"smartwatch", []RepairKind{SoftwareRepair}},
		{"", []RepairKind{SoftwareRepair}},
	}

	for _, tt := range tests {
		got := ResolveRepairTypes(tt.category)
		if len(got) != len(tt.expected) {
			t.Errorf("ResolveRepairTypes(%q) returned %d kinds; want %d", tt.category, len(got), len(tt.expected))
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ResolveRepairTypes(%q)[%d] = %s; want %s", tt.category, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestResolveRepairTypes_AlwaysIncludesSoftware(t *testing.T) {
	categories := []string{"phone", "tablet", "laptop", "console", "unknown", ""}

	for _, cat := range categories {
		kinds := ResolveRepairTypes(cat)

		found := false
		for _, k := range kinds {
			if k == SoftwareRepair {
				found = true
			}
			if !k.IsValid() {
				t.Errorf("ResolveRepairTypes(%q) returned %q which is outside the repair-kind set", cat, k)
			}
		}
		if !found {
			t.Errorf("ResolveRepairTypes(%q) does not include softwareRepair", cat)
		}
	}
}

func TestRepairKindLabel(t *testing.T) {
	tests := []struct {
		kind     RepairKind
		expected string
	}{
		{ScreenRepair, "Screen Repair"},
		{BatteryReplacement, "Battery Replacement"},
		{SoftwareRepair, "Software Issues"},
		{MotherboardRepair, "Motherboard Repair"},
		{RepairKind("hingeRepair"), "hingeRepair"}, // unknown falls back to raw key
	}

	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.expected {
			t.Errorf("Label(%q) = %q; want %q", tt.kind, got, tt.expected)
		}
	}
}
