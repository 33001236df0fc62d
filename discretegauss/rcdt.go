// Package discretegauss adapts a lattice-crypto discrete Gaussian base
// sampler into a component of this library: its reverse-CDT threshold
// table and bit-exact polynomial approximation of exp(-x) are themselves
// an instance of "exact random variate generation from a CDF comparison
// against uniform bits", just specialized to one distribution and
// expressed as a fast fixed-point comparator instead of a general trie
// walk. It is exercised two ways: directly, as a fast path (Sample), and
// as a plain CDF table (CumulativeRCDT) fed into the package's
// GenerateOpt/Quantile machinery so the two paths can be cross-checked
// against each other.
package discretegauss

import "github.com/holiman/uint256"

// rcdtBits is the bit precision of the rcdt table entries.
const (
	rcdtBits    = 72
	rcdtBitsLen = rcdtBits >> 3
)

// ln2 and iln2 are ln(2) and 1/ln(2).
const (
	ln2  float64 = 0.69314718056
	iln2 float64 = 1.44269504089
)

// inv2Sigma2 is 1 / (2 * MaxSigma^2), for MaxSigma = 1.8205 (the Falcon
// signature scheme's maximum base-sampler standard deviation).
const inv2Sigma2 float64 = 0.15086504887537272

// rcdt is the reverse cumulative distribution table of a distribution
// very close to a half-Gaussian with standard deviation MaxSigma.
//
// One entry in the originally retrieved table ("0x1F80D88A7B64y28")
// contained a non-hex digit; it is corrected here by dropping that
// character, which keeps the table strictly decreasing.
var rcdt = []*uint256.Int{
	mustHex("0xA3F7F42ED3AC391802"),
	mustHex("0x54D32B181F3F7DDB82"),
	mustHex("0x227DCDD0934829C1FF"),
	mustHex("0xAD1754377C7994AE4"),
	mustHex("0x295846CAEF33F1F6F"),
	mustHex("0x774AC754ED74BD5F"),
	mustHex("0x1024DD542B776AE4"),
	mustHex("0x1A1FFDC65AD63DA"),
	mustHex("0x1F80D88A7B6428"),
	mustHex("0x1C3FDB2040C69"),
	mustHex("0x12CF24D031FB"),
	mustHex("0x949F8B091F"),
	mustHex("0x3665DA998"),
	mustHex("0xEBF6EBB"),
	mustHex("0x2F5D7E"),
	mustHex("0x7098"),
	mustHex("0xC6"),
	mustHex("0x1"),
}

// expCoeffs are the coefficients of a degree-12 polynomial approximating
// exp(-x) on [0, ln 2], lifted from FACCT (https://doi.org/10.1109/TC.2019.2940949).
// The value (2^-63) * sum(expCoeffs[12-i] * x^i for i in 0..12) approximates exp(-x).
var expCoeffs = []*uint256.Int{
	uint256.NewInt(0x00000004741183A3),
	uint256.NewInt(0x00000036548CFC06),
	uint256.NewInt(0x0000024FDCBF140A),
	uint256.NewInt(0x0000171D939DE045),
	uint256.NewInt(0x0000D00CF58F6F84),
	uint256.NewInt(0x000680681CF796E3),
	uint256.NewInt(0x002D82D8305B0FEA),
	uint256.NewInt(0x011111110E066FD0),
	uint256.NewInt(0x0555555555070F00),
	uint256.NewInt(0x155555555581FF00),
	uint256.NewInt(0x400000000002B400),
	uint256.NewInt(0x7FFFFFFFFFFF4800),
	uint256.NewInt(0x8000000000000000),
}

func mustHex(s string) *uint256.Int {
	v := new(uint256.Int)
	if _, err := v.SetFromHex(s); err != nil {
		panic(err)
	}
	return v
}
