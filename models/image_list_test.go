package models

import (
	"reflect"
	"testing"
)

func TestParseImageList(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want ImageList
	}{
		{"json string", `["a.jpg","b.jpg"]`, ImageList{"a.jpg", "b.jpg"}},
		{"json bytes", []byte(`["x.png"]`), ImageList{"x.png"}},
		{"empty string", "", ImageList{}},
		{"whitespace", "   ", ImageList{}},
		{"null literal", "null", ImageList{}},
		{"malformed", `["a.jpg"`, ImageList{}},
		{"not an array", `{"url":"a.jpg"}`, ImageList{}},
		{"numbers", `[1,2]`, ImageList{}},
		{"nil", nil, ImageList{}},
		{"unsupported type", 42, ImageList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseImageList(tt.raw)
			if got == nil {
				t.Fatalf("ParseImageList returned nil, want non-nil list")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseImageList(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestImageListValue(t *testing.T) {
	v, err := ImageList{"a.jpg", "b.jpg"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != `["a.jpg","b.jpg"]` {
		t.Errorf("Value = %v", v)
	}

	v, err = ImageList(nil).Value()
	if err != nil {
		t.Fatalf("Value(nil): %v", err)
	}
	if v != "[]" {
		t.Errorf("Value(nil) = %v, want []", v)
	}
}

func TestImageListScanDegradesToEmpty(t *testing.T) {
	list := ImageList{"old.jpg"}
	if err := list.Scan("not json"); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Scan(malformed) = %v, want empty", list)
	}
}
