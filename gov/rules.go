package gov

import (
	"encoding/json"
	"fmt"
)

// Domain identification constants. Domain ids are the bridge-level network
// identifiers, not EVM chain ids; 0 is reserved to mean "unconfigured".
const (
	// MainHomeDomainID / MainRemoteDomainID identify the production pair.
	MainHomeDomainID   uint32 = 101
	MainRemoteDomainID uint32 = 109

	// TestHomeDomainID / TestRemoteDomainID identify the public test pair.
	TestHomeDomainID   uint32 = 10101
	TestRemoteDomainID uint32 = 10109

	// FakeHomeDomainID / FakeRemoteDomainID identify the local fakenet pair
	// used by the in-process runtime and the integration tests.
	FakeHomeDomainID   uint32 = 4001
	FakeRemoteDomainID uint32 = 4002
)

// Rules bundles the governance parameters for one deployment pair.
type Rules struct {
	// Name identifies the network preset (main, test, fake) in logs and
	// config dumps.
	Name string

	// HomeDomainID is where proposals are created and tallies land.
	HomeDomainID uint32

	// RemoteDomainID is where this aggregator runs and vetoes are cast.
	RemoteDomainID uint32

	// RequireEndedResults makes BridgeResults refuse a proposal whose
	// voting window is still open. The source behavior permits bridging an
	// active proposal; this knob exists so operators can opt into the
	// stricter policy without a code change.
	RequireEndedResults bool
}

// MainNetRules returns the production parameters.
func MainNetRules() Rules {
	return Rules{
		Name:           "main",
		HomeDomainID:   MainHomeDomainID,
		RemoteDomainID: MainRemoteDomainID,
	}
}

// TestNetRules returns the public-testnet parameters.
func TestNetRules() Rules {
	return Rules{
		Name:           "test",
		HomeDomainID:   TestHomeDomainID,
		RemoteDomainID: TestRemoteDomainID,
	}
}

// FakeNetRules returns parameters for a local two-domain loopback. The
// strict results policy is enabled here so it stays exercised.
func FakeNetRules() Rules {
	return Rules{
		Name:                "fake",
		HomeDomainID:        FakeHomeDomainID,
		RemoteDomainID:      FakeRemoteDomainID,
		RequireEndedResults: true,
	}
}

// RulesByName maps a preset name to its Rules.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "main":
		return MainNetRules(), nil
	case "test":
		return TestNetRules(), nil
	case "fake":
		return FakeNetRules(), nil
	default:
		return Rules{}, fmt.Errorf("gov: unknown rules preset %q", name)
	}
}

// String returns the rules as a JSON one-liner for logs and dumps.
func (r Rules) String() string {
	b, _ := json.Marshal(r)
	return string(b)
}
