package sprite

import (
	"strings"
	"testing"
)

func TestInterpolateName_HashTokens(t *testing.T) {
	content := []byte("abc")

	cases := []struct {
		input string
		want  string
	}{
		{"s.svg", "s.svg"},
		{"s.[hash].svg", "s.900150983cd24fb0d6963f7d28e17f72.svg"},
		{"s.[contenthash].svg", "s.900150983cd24fb0d6963f7d28e17f72.svg"},
		{"s.[hash:8].svg", "s.90015098.svg"},
		{"s.[md4:hash:8].svg", "s.a448017a.svg"},
		{"s.[HASH:8].svg", "s.90015098.svg"},
		{"s.[ContentHash:6].svg", "s.900150.svg"},
		{"s.[MD4:Hash:Hex:8].svg", "s.a448017a.svg"},
		{"s.[hash:0].svg", "s.900150983cd24fb0d6963f7d28e17f72.svg"},
		{"s.[sha1:hash:hex:0].svg", "s.a9993e364706816aba3e25717850c26c9cd0d89d.svg"},
		{"[path][name].[ext]", "sprite.svg"},
		{"img/[folder]/[NAME].[EXT]", "img//sprite.svg"},
		{"s.[md5:hash:hex:6].svg", "s.900150.svg"},
		{"s.[sha256:contenthash:hex:12].svg", "s.ba7816bf8f01.svg"},
		{"s.[xxhash64:hash].svg", "s.44bc2cf5ad770999.svg"},
		{"[name].[ext]", "sprite.svg"},
		{"img/[name]-[md5:hash:hex:4].svg", "img/svg-9001.svg"},
		{"s.[unknown].svg", "s.[unknown].svg"},
		{"s.[crc:hash].svg", "s.[crc:hash].svg"},
		{"s.[hash:base99].svg", "s.[hash:base99].svg"},
	}
	for _, c := range cases {
		if got := InterpolateName(c.input, content); got != c.want {
			t.Errorf("InterpolateName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestInterpolateName_BaseDigests(t *testing.T) {
	out := InterpolateName("[md5:hash:base62:10]", []byte("abc"))
	if len(out) != 10 {
		t.Fatalf("expected 10 chars, got %q", out)
	}
	for _, r := range out {
		if !strings.ContainsRune(baseEncodeTables["base62"], r) {
			t.Fatalf("unexpected rune %q in %q", r, out)
		}
	}
}

func TestEncodeBase_LittleEndian(t *testing.T) {
	table := baseEncodeTables["base36"]
	if got := encodeBase([]byte{1, 0}, table); got != "1" {
		t.Fatalf("expected 1, got %q", got)
	}
	if got := encodeBase([]byte{0, 1}, table); got != "74" {
		t.Fatalf("expected 74, got %q", got)
	}
	if got := encodeBase([]byte{0, 0}, table); got != "" {
		t.Fatalf("expected empty encoding of zero, got %q", got)
	}
}
