// Package evaluate turns one profile into one immutable evaluation snapshot:
// a composite Quality Index plus a reproducible metadata hash.
//
// Two contracts live here and nowhere else:
//
//  1. Scoring — QualityIndex is a pure function of the four profile
//     dimensions: monotone up in the benefit dimensions, monotone down in
//     the cost dimensions, clamped into [0,100].
//  2. Reproducibility — MetadataHash digests a canonical serialization of
//     the profile fields and the index. The evaluation timestamp is
//     deliberately excluded, so an unchanged profile hashes identically at
//     any instant.
package evaluate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"proofbench/internal/profile"
)

// Canonical serialization format, version 1.
//
// The hash input joins these fields, in this order, with CanonicalSeparator:
//
//	name | family | privacy | soundness | proving | verification | quality
//
// Numerics are formatted with canonicalPrecision so 7 and 7.0 serialize
// identically. Description and timestamp are excluded. Changing the field
// order, precision, or separator invalidates every previously published
// hash — bump CanonicalVersion if the format ever has to change.
const (
	CanonicalVersion   = 1
	CanonicalSeparator = "|"
	canonicalPrecision = "%.4f"
)

// Snapshot is the immutable result of evaluating one profile at one
// instant. It has no identity beyond its held values; callers discard it
// after rendering.
type Snapshot struct {
	Profile      profile.Profile `json:"profile" yaml:"profile"`
	QualityIndex float64         `json:"quality_index" yaml:"quality_index"`
	Timestamp    time.Time       `json:"timestamp" yaml:"timestamp"` // informational; never hashed
	MetadataHash string          `json:"metadata_hash" yaml:"metadata_hash"`
}

// QualityIndex combines the four dimensions into one score in [0,100].
//
// Weighting policy (explicit, not inferred):
//
//	benefit = (privacy + soundness) / 2      → [0,10]
//	cost    = (proving + verification) / 2   → [0,10]
//	index   = ((benefit*2) - cost) / 2 * 10
//
// The raw formula bottoms out at -25 (zero benefit, maximum cost), so the
// result is clamped into [0,100] rather than rejected.
func QualityIndex(p profile.Profile) float64 {
	benefit := (p.PrivacyStrength + p.SoundnessGuarantee) / 2
	cost := (p.ProvingCost + p.VerificationCost) / 2
	index := ((benefit * 2) - cost) / 2 * 10
	return clamp(index, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CanonicalString builds the version-1 hash input for p and its computed
// quality index.
func CanonicalString(p profile.Profile, index float64) string {
	fields := []string{
		p.Name,
		p.Family,
		fmt.Sprintf(canonicalPrecision, p.PrivacyStrength),
		fmt.Sprintf(canonicalPrecision, p.SoundnessGuarantee),
		fmt.Sprintf(canonicalPrecision, p.ProvingCost),
		fmt.Sprintf(canonicalPrecision, p.VerificationCost),
		fmt.Sprintf(canonicalPrecision, index),
	}
	return strings.Join(fields, CanonicalSeparator)
}

// MetadataHash returns the lowercase-hex SHA-256 of the canonical string —
// 64 characters.
func MetadataHash(p profile.Profile, index float64) string {
	sum := sha256.Sum256([]byte(CanonicalString(p, index)))
	return hex.EncodeToString(sum[:])
}

// Evaluate produces a fresh snapshot for p. It never fails for a
// registry-validated profile; the only side effect is reading the clock for
// the informational timestamp.
func Evaluate(p profile.Profile) Snapshot {
	index := QualityIndex(p)
	return Snapshot{
		Profile:      p,
		QualityIndex: index,
		Timestamp:    time.Now().UTC(),
		MetadataHash: MetadataHash(p, index),
	}
}
