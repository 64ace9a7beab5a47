package sprite

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math/big"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/md4"

	"github.com/aalvaropc/svgstore/internal/app/template"
)

const (
	defaultHashType   = "md5"
	defaultDigestType = "hex"
	fallbackName      = "sprite"
	fallbackExt       = "svg"
)

var (
	reHashToken = regexp.MustCompile(`^(?:([^:]+):)?(?:hash|contenthash)(?::([a-z]+\d*))?(?::(\d+))?$`)
	reBracketed = regexp.MustCompile(`\[[^\[\]]*\]`)
	reWord      = regexp.MustCompile(`\w+`)
)

var baseEncodeTables = map[string]string{
	"base26": "abcdefghijklmnopqrstuvwxyz",
	"base32": "123456789abcdefghjkmnpqrstuvwxyz",
	"base36": "0123456789abcdefghijklmnopqrstuvwxyz",
	"base49": "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
	"base52": "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"base58": "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
	"base62": "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"base64": "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_",
}

// spriteName extracts the first word of the base name that is not part of a
// [token]: "images/sprite.[hash].svg" => "sprite".
func spriteName(logicalPath string) string {
	base := reBracketed.ReplaceAllString(path.Base(logicalPath), "")
	if w := reWord.FindString(base); w != "" {
		return w
	}
	return fallbackName
}

func spriteExt(logicalPath string) string {
	ext := strings.TrimPrefix(path.Ext(logicalPath), ".")
	if ext == "" || strings.ContainsAny(ext, "[]") {
		return fallbackExt
	}
	return ext
}

// InterpolateName resolves the tokens of a sprite name template against content.
// Supported, in any letter case: [name], [ext], [hash], [contenthash] and the
// [<hashType>:hash:<digestType>:<length>] family. [path] and [folder] have no
// source file to describe and resolve to "".
func InterpolateName(logicalPath string, content []byte) string {
	name := spriteName(logicalPath)
	ext := spriteExt(logicalPath)

	return template.RenderName(logicalPath, func(token string) (string, bool) {
		token = strings.ToLower(token)
		switch token {
		case "name":
			return name, true
		case "ext":
			return ext, true
		case "path", "folder":
			return "", true
		}
		return hashToken(token, content)
	})
}

func hashToken(token string, content []byte) (string, bool) {
	m := reHashToken.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}

	hashType, digestType := m[1], m[2]
	if hashType == "" {
		hashType = defaultHashType
	}
	if digestType == "" {
		digestType = defaultDigestType
	}

	sum, ok := digest(hashType, content)
	if !ok {
		return "", false
	}
	encoded, ok := encodeDigest(sum, digestType)
	if !ok {
		return "", false
	}

	// a zero length keeps the whole digest
	if m[3] != "" {
		if n, err := strconv.Atoi(m[3]); err == nil && n > 0 && n < len(encoded) {
			encoded = encoded[:n]
		}
	}
	return encoded, true
}

func digest(hashType string, content []byte) ([]byte, bool) {
	var h hash.Hash
	switch hashType {
	case "md4":
		h = md4.New()
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	case "xxhash64":
		out := make([]byte, 8)
		binary.BigEndian.PutUint64(out, xxhash.Sum64(content))
		return out, true
	default:
		return nil, false
	}
	h.Write(content)
	return h.Sum(nil), true
}

func encodeDigest(sum []byte, digestType string) (string, bool) {
	if digestType == "hex" {
		return hex.EncodeToString(sum), true
	}
	table, ok := baseEncodeTables[digestType]
	if !ok {
		return "", false
	}
	return encodeBase(sum, table), true
}

// encodeBase reads sum as a little-endian integer and writes it most significant
// digit first using table as the alphabet.
func encodeBase(sum []byte, table string) string {
	le := make([]byte, len(sum))
	for i, b := range sum {
		le[len(sum)-1-i] = b
	}

	n := new(big.Int).SetBytes(le)
	base := big.NewInt(int64(len(table)))
	mod := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		out = append(out, table[mod.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
