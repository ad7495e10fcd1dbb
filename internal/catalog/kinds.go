package catalog

// RepairKind identifies one of the fixed repair categories the shop offers.
// The string values double as wire/dataset keys, so they must stay stable.
type RepairKind string

const (
	ScreenRepair       RepairKind = "screenRepair"
	BatteryReplacement RepairKind = "batteryReplacement"
	BackGlassRepair    RepairKind = "backGlassRepair"
	SoftwareRepair     RepairKind = "softwareRepair"
	KeyboardRepair     RepairKind = "keyboardRepair"
	MotherboardRepair  RepairKind = "motherboardRepair"
	SpeakerRepair      RepairKind = "speakerRepair"
	CameraRepair       RepairKind = "cameraRepair"
)

var kindLabels = map[RepairKind]string{
	ScreenRepair:       "Screen Repair",
	BatteryReplacement: "Battery Replacement",
	BackGlassRepair:    "Back Glass Repair",
	SoftwareRepair:     "Software Issues",
	KeyboardRepair:     "Keyboard Repair",
	MotherboardRepair:  "Motherboard Repair",
	SpeakerRepair:      "Speaker Repair",
	CameraRepair:       "Camera Repair",
}

// Label returns the customer-facing name for a repair kind.
// Unknown kinds fall back to the raw key.
func (k RepairKind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// IsValid reports whether k belongs to the closed repair-kind set.
func (k RepairKind) IsValid() bool {
	_, ok := kindLabels[k]
	return ok
}

// AllKinds returns the closed set of repair kinds.
func AllKinds() []RepairKind {
	return []RepairKind{
		ScreenRepair,
		BatteryReplacement,
		BackGlassRepair,
		SoftwareRepair,
		KeyboardRepair,
		MotherboardRepair,
		SpeakerRepair,
		CameraRepair,
	}
}

// ResolveRepairTypes returns the ordered repair kinds applicable to a device
// category. Unknown categories degrade to the software-only set, never an error.
func ResolveRepairTypes(category string) []RepairKind {
	switch category {
	case "phone", "tablet":
		return []RepairKind{
			SoftwareRepair,
			ScreenRepair,
			BatteryReplacement,
			BackGlassRepair,
			CameraRepair,
			SpeakerRepair,
		}
	case "laptop":
		return []RepairKind{
			SoftwareRepair,
			ScreenRepair,
			BatteryReplacement,
			KeyboardRepair,
			MotherboardRepair,
			SpeakerRepair,
		}
	default:
		return []RepairKind{SoftwareRepair}
	}
}
