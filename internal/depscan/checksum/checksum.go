// Package checksum provides the hex-encoded digests attached to dependency
// records that have no backing artifact to hash, such as packages pinned in a
// lock file, where the digests are seeded from the package coordinate string.
package checksum

import (
	"crypto/md5"  //nolint:gosec // identification seed, not integrity protection
	"crypto/sha1" //nolint:gosec // identification seed, not integrity protection
	"crypto/sha256"
	"encoding/hex"
)

func SHA1(content string) string {
	sum := sha1.Sum([]byte(content)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

func SHA256(content string) string {
	sum := sha256.Sum256([]byte(content))

	return hex.EncodeToString(sum[:])
}

func MD5(content string) string {
	sum := md5.Sum([]byte(content)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}
