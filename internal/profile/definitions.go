package profile

// definitions.go — profile sets as data.
//
// Profiles reach the registry as plain records: either the built-in
// comparison set below or an external YAML document. Keeping them as data
// rather than construction code keeps the evaluator testable with synthetic
// sets and avoids hidden process-wide state.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefinitionsFile is the YAML document shape accepted by LoadDefinitions:
//
//	profiles:
//	  - name: ...
//	    family: ...
//	    privacy_strength: 9.3
//	    ...
type DefinitionsFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadDefinitions reads profile records from a YAML file. Records are
// returned as-is; validation happens at registration.
func LoadDefinitions(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var f DefinitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Profiles) == 0 {
		return nil, fmt.Errorf("%s: no profiles defined", path)
	}
	return f.Profiles, nil
}

// DefaultDefinitions returns the built-in comparison set: a
// private-computation design, an encrypted-compute design, and a
// verification-oriented design.
func DefaultDefinitions() []Profile {
	return []Profile{
		{
			Name:               "Aztec Noir-style ZK System",
			Family:             "ZK-SNARK privacy model",
			Description:        "A zk system enabling encrypted transactions and private state.",
			PrivacyStrength:    9.3,
			SoundnessGuarantee: 8.4,
			ProvingCost:        7.8,
			VerificationCost:   2.1,
		},
		{
			Name:               "Zama FHE Cryptosystem",
			Family:             "Fully Homomorphic Encryption",
			Description:        "FHE compute model with encrypted inputs, outputs, and logic.",
			PrivacyStrength:    8.7,
			SoundnessGuarantee: 9.1,
			ProvingCost:        9.2,
			VerificationCost:   7.8,
		},
		{
			Name:               "Formal Soundness Verification Model",
			Family:             "Proof-oriented protocol engineering",
			Description:        "A system built around rigorous soundness proofs and verifiable execution.",
			PrivacyStrength:    6.4,
			SoundnessGuarantee: 10.0,
			ProvingCost:        6.1,
			VerificationCost:   3.2,
		},
	}
}
