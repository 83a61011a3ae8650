package domain

import "testing"

func TestImageName(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "tagged image",
			ref:  "nginx:1.25",
			want: "nginx:1.25",
		},
		{
			name: "untagged digest",
			ref:  "sha256:3b25b682ea82b2db3cc4fd48db818be788ee3f902ac7377090044a2687c4e3e5",
			want: UnknownField,
		},
		{
			name: "empty reference",
			ref:  "",
			want: UnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImageName(tt.ref)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
