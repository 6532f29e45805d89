package selfpath

import "testing"

func TestModuleRecordContains(t *testing.T) {
	module := moduleRecord{
		path: "/usr/lib/libfoo.so",
		text: addrRange{start: 0x1000, end: 0x2000},
		data: addrRange{start: 0x3000, end: 0x4000},
	}

	cases := []struct {
		addr uintptr
		want bool
	}{
		{0x1000, true},
		{0x1fff, true},
		{0x2000, false},
		{0x3000, true},
		{0x3fff, true},
		{0x4000, false},
		{0x0, false},
	}
	for _, tc := range cases {
		if got := module.contains(tc.addr); got != tc.want {
			t.Fatalf("contains(%#x) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestModuleLocation(t *testing.T) {
	plain := moduleRecord{path: "/usr/lib/libfoo.so"}
	if got := plain.location(); got != "/usr/lib/libfoo.so" {
		t.Fatalf("location() = %q", got)
	}

	archived := moduleRecord{path: "/usr/lib/libfoo.a", member: "shr_64.o"}
	if got := archived.location(); got != "/usr/lib/libfoo.a(shr_64.o)" {
		t.Fatalf("location() with member = %q", got)
	}
}

func TestModuleForAddress(t *testing.T) {
	modules := []moduleRecord{
		{path: "/bin/app", text: addrRange{start: 0x1000, end: 0x2000}},
		{path: "/usr/lib/libfoo.so", text: addrRange{start: 0x5000, end: 0x6000}},
		{path: "/usr/lib/libbar.a", member: "shr.o", data: addrRange{start: 0x8000, end: 0x9000}},
	}

	if got, ok := moduleForAddress(modules, 0x5800); !ok || got != "/usr/lib/libfoo.so" {
		t.Fatalf("moduleForAddress(0x5800) = %q, %v", got, ok)
	}
	if got, ok := moduleForAddress(modules, 0x8800); !ok || got != "/usr/lib/libbar.a(shr.o)" {
		t.Fatalf("moduleForAddress(0x8800) = %q, %v", got, ok)
	}
	if _, ok := moduleForAddress(modules, 0x7000); ok {
		t.Fatal("moduleForAddress matched an unmapped address")
	}
}

func TestAnchorAddress(t *testing.T) {
	if anchorAddress() == 0 {
		t.Fatal("anchorAddress() = 0")
	}
}
