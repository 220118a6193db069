package testutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/branchswitch/pkg/types"
)

// GetTestChecksum calculates the digest a fingerprinter produces for content.
// This is used in tests to generate predictable digests
func GetTestChecksum(content string) types.Digest {
	hash := sha256.Sum256([]byte(content))
	return types.Digest(fmt.Sprintf("sha256:%x", hash))
}
