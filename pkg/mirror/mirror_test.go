package mirror

import "testing"

func TestSource_URLs(t *testing.T) {
	src := Source{Base: "http://ftp.uk.debian.org/debian/", Suite: "stable", Component: "main"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "contents",
			got:  src.ContentsURL("amd64", false),
			want: "http://ftp.uk.debian.org/debian/dists/stable/main/Contents-amd64.gz",
		},
		{
			name: "contents udeb",
			got:  src.ContentsURL("arm64", true),
			want: "http://ftp.uk.debian.org/debian/dists/stable/main/Contents-udeb-arm64.gz",
		},
		{
			name: "release",
			got:  src.ReleaseURL(),
			want: "http://ftp.uk.debian.org/debian/dists/stable/Release",
		},
		{
			name: "checksum entry",
			got:  src.ContentsEntry("amd64", false),
			want: "main/Contents-amd64.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDefaultSource(t *testing.T) {
	src := DefaultSource()
	if src.Base != DefaultBase || src.Suite != "stable" || src.Component != "main" {
		t.Errorf("unexpected default source: %+v", src)
	}
}
