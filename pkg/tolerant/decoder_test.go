package tolerant

import (
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name: "strict JSON",
			raw:  `{"summary": "ok"}`,
			want: map[string]interface{}{"summary": "ok"},
		},
		{
			name: "fenced JSON block",
			raw:  "```json\n{\"summary\": \"ok\"}\n```",
			want: map[string]interface{}{"summary": "ok"},
		},
		{
			name: "fenced block without json tag",
			raw:  "```\n{\"summary\": \"ok\"}\n```",
			want: map[string]interface{}{"summary": "ok"},
		},
		{
			name: "prose wrapped around braces",
			raw:  `Sure, here's the result: {"summary": "ok"} Let me know if you need more.`,
			want: map[string]interface{}{"summary": "ok"},
		},
		{
			name: "trailing comma before closing brace",
			raw:  `{"summary": "ok",}`,
			want: map[string]interface{}{"summary": "ok"},
		},
		{
			name: "trailing comma before closing bracket",
			raw:  `{"items": ["a", "b",]}`,
			want: map[string]interface{}{"items": []interface{}{"a", "b"}},
		},
		{
			name:    "no braces at all",
			raw:     "no json here",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			raw:     "{incomplete",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q) expected error, got none", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
