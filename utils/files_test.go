package utils

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePublicPath(t *testing.T) {
	orig := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = orig }()

	base, err := filepath.Abs(UploadDir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		rel     string
		want    string
		wantErr error
	}{
		{name: "plain receipt", rel: "receipts/abc.png", want: filepath.Join(base, "receipts", "abc.png")},
		{name: "leading slash stripped", rel: "/receipts/abc.png", want: filepath.Join(base, "receipts", "abc.png")},
		{name: "dot segments collapse inside", rel: "receipts/../receipts/abc.png", want: filepath.Join(base, "receipts", "abc.png")},
		{name: "climbs out", rel: "../etc/passwd", wantErr: ErrBadPath},
		{name: "deep climb", rel: "receipts/../../../etc/passwd", wantErr: ErrBadPath},
		{name: "empty", rel: "", wantErr: ErrBadPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePublicPath(tt.rel)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolvePublicPath(%q) err = %v, want %v", tt.rel, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ResolvePublicPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
			if !strings.HasPrefix(got, base) {
				t.Errorf("resolved path %q escapes %q", got, base)
			}
		})
	}
}
