package imposition

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/scoreline/pkg/errors"
)

// Kind identifies a folding scheme. The zero value is not a valid scheme and
// produces no scores.
type Kind int

const (
	Bifold Kind = iota + 1
	Trifold
	Gatefold
	Custom
)

var kindNames = map[Kind]string{
	Bifold:   "bifold",
	Trifold:  "trifold",
	Gatefold: "gatefold",
	Custom:   "custom",
}

// Kinds lists the recognised schemes in display order.
var Kinds = []Kind{Bifold, Trifold, Gatefold, Custom}

// String returns the boundary name of the scheme ("bifold", ...).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the recognised schemes.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// MarshalText encodes k by name. The zero Kind encodes as an empty string.
func (k Kind) MarshalText() ([]byte, error) {
	if k == 0 {
		return []byte{}, nil
	}
	if !k.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidScheme, "unknown fold scheme %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a scheme name.
func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = 0
		return nil
	}
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a scheme name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, v := range kindNames {
		if v == n {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidScheme, "unknown fold scheme %q (must be bifold, trifold, gatefold or custom)", name)
}

// Scheme is a folding scheme. Offsets carries the parsed custom offsets and
// is only consulted when Kind is Custom.
type Scheme struct {
	Kind    Kind
	Offsets []float64
}

// ParseScheme resolves the boundary inputs into a Scheme. offsets is only
// read for the custom scheme; entries that do not parse are dropped.
func ParseScheme(name, offsets string) (Scheme, error) {
	k, err := ParseKind(name)
	if err != nil {
		return Scheme{}, err
	}
	s := Scheme{Kind: k}
	if k == Custom {
		s.Offsets = ParseOffsets(offsets)
	}
	return s, nil
}

// String renders the scheme the way it is typed: "custom(1, 2.5)" for
// custom schemes, the bare name otherwise.
func (s Scheme) String() string {
	if s.Kind != Custom {
		return s.Kind.String()
	}
	return "custom(" + FormatList(s.Offsets) + ")"
}

type schemeJSON struct {
	Kind    Kind      `json:"kind"`
	Offsets []float64 `json:"offsets,omitempty"`
}

// MarshalJSON encodes the scheme as {"kind": "...", "offsets": [...]}.
func (s Scheme) MarshalJSON() ([]byte, error) {
	out := schemeJSON{Kind: s.Kind}
	if s.Kind == Custom {
		out.Offsets = s.Offsets
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (s *Scheme) UnmarshalJSON(b []byte) error {
	var in schemeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	s.Kind = in.Kind
	s.Offsets = nil
	if in.Kind == Custom {
		s.Offsets = in.Offsets
	}
	return nil
}
