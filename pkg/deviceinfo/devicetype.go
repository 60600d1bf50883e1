package deviceinfo

// DeviceKind is the category part of a DeviceType.
type DeviceKind uint8

// Known device kinds.
const (
	// Unknown means the device type could not be determined.
	Unknown DeviceKind = iota
	Phone
	Wearable
	LiteWearable
	Tablet
	TV
	Car
	SmartVision
	// Other is a device type this package does not know yet. The raw name is
	// kept in DeviceType.Name.
	Other
)

var kindNames = [...]string{
	Unknown:      "unknown",
	Phone:        "phone",
	Wearable:     "wearable",
	LiteWearable: "liteWearable",
	Tablet:       "tablet",
	TV:           "tv",
	Car:          "car",
	SmartVision:  "smartVision",
	Other:        "other",
}

func (k DeviceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// DeviceType is the classified result of OH_GetDeviceType.
type DeviceType struct {
	Kind DeviceKind
	// Name is the unrecognized native name. Only set when Kind is Other.
	Name string
}

// See the documentation of OH_GetDeviceType. "default" is what phones report.
var deviceKinds = map[string]DeviceKind{
	"phone":        Phone,
	"default":      Phone,
	"wearable":     Wearable,
	"liteWearable": LiteWearable,
	"tablet":       Tablet,
	"tv":           TV,
	"car":          Car,
	"smartVision":  SmartVision,
}

const otherPrefix = "other:"

// ParseDeviceType classifies a native device type name. Matching is exact and
// case-sensitive; an empty name yields Unknown.
func ParseDeviceType(name string) DeviceType {
	if name == "" {
		return DeviceType{Kind: Unknown}
	}
	if kind, ok := deviceKinds[name]; ok {
		return DeviceType{Kind: kind}
	}
	return DeviceType{Kind: Other, Name: name}
}

// String returns the canonical name of the kind, or the raw name for Other.
// An Other named like a kind, such as "unknown", prints the same as that kind;
// compare Kind or use MarshalText to tell them apart.
func (t DeviceType) String() string {
	if t.Kind == Other {
		return t.Name
	}
	return t.Kind.String()
}

// MarshalText implements encoding.TextMarshaler. Other is written as
// "other:<name>" so it never collides with a known kind.
func (t DeviceType) MarshalText() ([]byte, error) {
	if t.Kind == Other {
		return []byte(otherPrefix + t.Name), nil
	}
	return []byte(t.Kind.String()), nil
}
