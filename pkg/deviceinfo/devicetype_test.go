package deviceinfo

import "testing"

func TestParseDeviceType(t *testing.T) {
	tests := []struct {
		in   string
		want DeviceType
	}{
		{"phone", DeviceType{Kind: Phone}},
		{"default", DeviceType{Kind: Phone}},
		{"wearable", DeviceType{Kind: Wearable}},
		{"liteWearable", DeviceType{Kind: LiteWearable}},
		{"tablet", DeviceType{Kind: Tablet}},
		{"tv", DeviceType{Kind: TV}},
		{"car", DeviceType{Kind: Car}},
		{"smartVision", DeviceType{Kind: SmartVision}},
		{"smartWatch", DeviceType{Kind: Other, Name: "smartWatch"}},
		{"Phone", DeviceType{Kind: Other, Name: "Phone"}},
		{"TV", DeviceType{Kind: Other, Name: "TV"}},
		{"litewearable", DeviceType{Kind: Other, Name: "litewearable"}},
		{" phone", DeviceType{Kind: Other, Name: " phone"}},
		{"", DeviceType{Kind: Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDeviceType(tt.in); got != tt.want {
				t.Errorf("ParseDeviceType(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeviceTypeString(t *testing.T) {
	tests := []struct {
		in   DeviceType
		want string
	}{
		{DeviceType{Kind: Phone}, "phone"},
		{DeviceType{Kind: LiteWearable}, "liteWearable"},
		{DeviceType{Kind: SmartVision}, "smartVision"},
		{DeviceType{Kind: Unknown}, "unknown"},
		{DeviceType{Kind: Other, Name: "2in1"}, "2in1"},
		{DeviceType{Kind: DeviceKind(200)}, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}

}

func TestDeviceTypeMarshalText(t *testing.T) {
	tests := []struct {
		in   DeviceType
		want string
	}{
		{DeviceType{Kind: TV}, "tv"},
		{DeviceType{Kind: Unknown}, "unknown"},
		{DeviceType{Kind: Other, Name: "2in1"}, "other:2in1"},
		{DeviceType{Kind: Other, Name: "unknown"}, "other:unknown"},
		{DeviceType{Kind: Other, Name: "phone"}, "other:phone"},
	}
	for _, tt := range tests {
		text, err := tt.in.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(text) != tt.want {
			t.Errorf("%+v.MarshalText() = %q, want %q", tt.in, text, tt.want)
		}
	}

	unknown, _ := DeviceType{Kind: Unknown}.MarshalText()
	other, _ := DeviceType{Kind: Other, Name: "unknown"}.MarshalText()
	if string(unknown) == string(other) {
		t.Errorf("Unknown and Other(unknown) both marshal to %q", unknown)
	}
}
