package prefix

import (
	"errors"
	"testing"
)

func TestParse_Posix(t *testing.T) {
	cases := []struct {
		name        string
		libraryPath string
		libraryName string
		want        string
	}{
		{
			name:        "shaded prefix with escaped underscore",
			libraryPath: "/opt/app/libcom_example_1shop_transport_native.so",
			libraryName: "transport_native",
			want:        "com/example_shop/",
		},
		{
			name:        "prefix without underscores",
			libraryPath: "/usr/java/packages/lib/libfootransport_native.so",
			libraryName: "transport_native",
			want:        "foo/",
		},
		{
			name:        "no prefix",
			libraryPath: "/usr/lib/libtransport_native.so",
			libraryName: "transport_native",
			want:        "",
		},
		{
			name:        "library name embedded twice keeps last match",
			libraryPath: "/opt/libfoo_transport_native_transport_native.so",
			libraryName: "transport_native",
			want:        "foo/transport/native/",
		},
		{
			name:        "nested netty style prefix",
			libraryPath: "/tmp/libio_netty_1internal_tcnative_transport_native.so",
			libraryName: "transport_native",
			want:        "io/netty_internal/tcnative/",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse(tc.libraryPath, tc.libraryName, posixStyle)
			if err != nil {
				t.Fatalf("parse(%q, %q): %v", tc.libraryPath, tc.libraryName, err)
			}
			if got != tc.want {
				t.Fatalf("parse(%q, %q) = %q, want %q", tc.libraryPath, tc.libraryName, got, tc.want)
			}
		})
	}
}

func TestParse_Windows(t *testing.T) {
	cases := []struct {
		name        string
		libraryPath string
		libraryName string
		want        string
	}{
		{
			name:        "shaded prefix behind separator",
			libraryPath: `C:\app\com_example_1shop_transport_native.dll`,
			libraryName: "transport_native",
			want:        "com/example_shop/",
		},
		{
			name:        "bare filename with prefix",
			libraryPath: "com_foo_transport_native.dll",
			libraryName: "transport_native",
			want:        "com/foo/",
		},
		{
			name:        "bare filename without prefix",
			libraryPath: "transport_native.dll",
			libraryName: "transport_native",
			want:        "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse(tc.libraryPath, tc.libraryName, windowsStyle)
			if err != nil {
				t.Fatalf("parse(%q, %q): %v", tc.libraryPath, tc.libraryName, err)
			}
			if got != tc.want {
				t.Fatalf("parse(%q, %q) = %q, want %q", tc.libraryPath, tc.libraryName, got, tc.want)
			}
		})
	}
}

func TestParse_LibraryNameNotFound(t *testing.T) {
	for _, style := range []pathStyle{posixStyle, windowsStyle} {
		if _, err := parse("/opt/app/libother.so", "transport_native", style); !errors.Is(err, ErrLibraryNameNotFound) {
			t.Fatalf("style %d: got %v, want ErrLibraryNameNotFound", style, err)
		}
	}
}

func TestParse_EmptyLibraryName(t *testing.T) {
	if _, err := parse("/opt/app/libfoo.so", "", posixStyle); !errors.Is(err, ErrLibraryNameNotFound) {
		t.Fatalf("got %v, want ErrLibraryNameNotFound", err)
	}
}

func TestParse_MissingLibAnchor(t *testing.T) {
	// "lib" occurs only inside the library name itself, after the match.
	if _, err := parse("/opt/com_foo_mylib.so", "mylib", posixStyle); !errors.Is(err, ErrMissingLibAnchor) {
		t.Fatalf("got %v, want ErrMissingLibAnchor", err)
	}
}

func TestParse_UnsupportedEscape(t *testing.T) {
	for _, digit := range []byte{'0', '2', '3', '4', '5', '6', '7', '8', '9'} {
		path := "/a/libfoo_" + string(digit) + "bar_mylib.so"
		_, err := parse(path, "mylib", posixStyle)

		var escErr *UnsupportedEscapeError
		if !errors.As(err, &escErr) {
			t.Fatalf("parse(%q): got %v, want UnsupportedEscapeError", path, err)
		}
		if escErr.Escape != digit {
			t.Fatalf("parse(%q): escape %q, want %q", path, escErr.Escape, digit)
		}
	}
}

func TestUnmangle(t *testing.T) {
	cases := []struct {
		mangled string
		want    string
	}{
		{"io_netty_1internal_tcnative_", "io/netty_internal/tcnative/"},
		{"com_example_1shop_", "com/example_shop/"},
		{"com_example", "com/example/"},
		{"foo", "foo/"},
		{"_", "/"},
		{"a_1_1b_", "a__b/"},
	}

	for _, tc := range cases {
		got, err := unmangle(tc.mangled)
		if err != nil {
			t.Fatalf("unmangle(%q): %v", tc.mangled, err)
		}
		if got != tc.want {
			t.Fatalf("unmangle(%q) = %q, want %q", tc.mangled, got, tc.want)
		}
	}
}

func TestPrepend(t *testing.T) {
	if got := Prepend("", "NativeTransport"); got != "NativeTransport" {
		t.Fatalf("Prepend with empty prefix = %q", got)
	}
	if got := Prepend("com/example_shop/", "NativeTransport"); got != "com/example_shop/NativeTransport" {
		t.Fatalf("Prepend = %q", got)
	}
}

func TestReverseFind(t *testing.T) {
	cases := []struct {
		s      string
		start  int
		floor  int
		needle string
		want   int
	}{
		{"liblibfoo", 6, 0, "lib", 3},
		{"liblibfoo", 6, 4, "lib", -1},
		{"foolib", 3, 0, "lib", -1},
		{"/usr/lib/libfoo", 12, 0, "lib", 9},
		{"abc", 3, 0, "abcd", -1},
	}

	for _, tc := range cases {
		if got := ReverseFind(tc.s, tc.start, tc.floor, tc.needle); got != tc.want {
			t.Fatalf("ReverseFind(%q, %d, %d, %q) = %d, want %d", tc.s, tc.start, tc.floor, tc.needle, got, tc.want)
		}
	}
}
