package checksum_test

import (
	"testing"

	"github.com/swiftdeps/swiftdeps/internal/depscan/checksum"
)

func TestChecksums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantSHA1   string
		wantSHA256 string
		wantMD5    string
	}{
		{
			name:       "package coordinate",
			content:    "Alamofire:5.0.0",
			wantSHA1:   "5e73f059f6187a61a3f599e18ed4858c070ba655",
			wantSHA256: "aa631b02764f772e2cf2e9173f7509026b41f886cf150e38f2709e175dc272b3",
			wantMD5:    "c8534c258f6d55dbc90178020c8c3262",
		},
		{
			name:       "empty string",
			content:    "",
			wantSHA1:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			wantSHA256: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			wantMD5:    "d41d8cd98f00b204e9800998ecf8427e",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := checksum.SHA1(tt.content); got != tt.wantSHA1 {
				t.Errorf("SHA1(%q) = %s, want %s", tt.content, got, tt.wantSHA1)
			}
			if got := checksum.SHA256(tt.content); got != tt.wantSHA256 {
				t.Errorf("SHA256(%q) = %s, want %s", tt.content, got, tt.wantSHA256)
			}
			if got := checksum.MD5(tt.content); got != tt.wantMD5 {
				t.Errorf("MD5(%q) = %s, want %s", tt.content, got, tt.wantMD5)
			}
		})
	}
}
