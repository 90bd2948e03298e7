package autodock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomforge/atomtype/autodock"
	"github.com/atomforge/atomtype/chem"
)

// carbon builds a carbon AtomData with the given perception flags.
func carbon(aromatic bool, heteroDeg int) chem.AtomData {
	a := chem.NewAtomData(6)
	a.Aromatic = aromatic
	a.HeteroDeg = heteroDeg

	return a
}

// TestTyper_NamesMatchNumTypes verifies the name list covers the whole
// category space with unique entries.
func TestTyper_NamesMatchNumTypes(t *testing.T) {
	typer := autodock.New()
	names := typer.TypeNames()

	require.Len(t, names, typer.NumTypes(), "one name per category")
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		assert.Greater(t, len(name), 2, "long names must exceed two characters: %q", name)
		_, dup := seen[name]
		assert.False(t, dup, "duplicate name %q", name)
		seen[name] = struct{}{}
	}
}

// TestTyper_CarbonSplit checks the aromatic/aliphatic and
// hydrophobe/non-hydrophobe disambiguation.
func TestTyper_CarbonSplit(t *testing.T) {
	typer := autodock.New()

	cases := []struct {
		name string
		atom chem.AtomData
		want autodock.Type
	}{
		{"aliphatic hydrophobe", carbon(false, 0), autodock.AliphaticCarbonXSHydrophobe},
		{"aliphatic polar", carbon(false, 1), autodock.AliphaticCarbonXSNonHydrophobe},
		{"aromatic hydrophobe", carbon(true, 0), autodock.AromaticCarbonXSHydrophobe},
		{"aromatic polar", carbon(true, 2), autodock.AromaticCarbonXSNonHydrophobe},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, _ := typer.Type(tc.atom)
			assert.Equal(t, int(tc.want), id)
		})
	}
}

// TestTyper_SP2RingCarbonCountsAsAromatic verifies the hybridization
// fallback when the aromaticity flag is unset.
func TestTyper_SP2RingCarbonCountsAsAromatic(t *testing.T) {
	typer := autodock.New()

	a := carbon(false, 0)
	a.Hybrid = chem.HybridSP2
	a.Ring = true

	id, _ := typer.Type(a)
	assert.Equal(t, int(autodock.AromaticCarbonXSHydrophobe), id)
}

// TestTyper_HydrogenPolarity checks plain vs polar (donatable) hydrogen.
func TestTyper_HydrogenPolarity(t *testing.T) {
	typer := autodock.New()

	plain := chem.NewAtomData(1)
	id, _ := typer.Type(plain)
	assert.Equal(t, int(autodock.Hydrogen), id)

	polar := chem.NewAtomData(1)
	polar.HeteroDeg = 1
	id, _ = typer.Type(polar)
	assert.Equal(t, int(autodock.PolarHydrogen), id)
}

// TestTyper_NitrogenRoles walks the four donor/acceptor variants.
func TestTyper_NitrogenRoles(t *testing.T) {
	typer := autodock.New()

	nitrogen := func(hcount, heavyDeg, charge int) chem.AtomData {
		a := chem.NewAtomData(7)
		a.ImplicitH = hcount
		a.HeavyDeg = heavyDeg
		a.Charge = charge

		return a
	}

	cases := []struct {
		name string
		atom chem.AtomData
		want autodock.Type
	}{
		{"amine NH with lone pair", nitrogen(2, 1, 0), autodock.NitrogenXSDonorAcceptor},
		{"donor only, saturated", nitrogen(1, 3, 0), autodock.NitrogenXSDonor},
		{"acceptor only", nitrogen(0, 2, 0), autodock.NitrogenXSAcceptor},
		{"quaternary cation", nitrogen(0, 4, 1), autodock.Nitrogen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, _ := typer.Type(tc.atom)
			assert.Equal(t, int(tc.want), id)
		})
	}
}

// TestTyper_OxygenRoles walks the oxygen donor/acceptor variants.
func TestTyper_OxygenRoles(t *testing.T) {
	typer := autodock.New()

	oxygen := func(hcount, charge int) chem.AtomData {
		a := chem.NewAtomData(8)
		a.ImplicitH = hcount
		a.Charge = charge

		return a
	}

	id, _ := typer.Type(oxygen(1, 0))
	assert.Equal(t, int(autodock.OxygenXSDonorAcceptor), id, "hydroxyl")

	id, _ = typer.Type(oxygen(0, 0))
	assert.Equal(t, int(autodock.OxygenXSAcceptor), id, "ether/carbonyl oxygen")

	id, _ = typer.Type(oxygen(1, 1))
	assert.Equal(t, int(autodock.OxygenXSDonor), id, "protonated oxygen donates only")

	id, _ = typer.Type(oxygen(0, 1))
	assert.Equal(t, int(autodock.Oxygen), id, "oxocarbenium-like oxygen")
}

// TestTyper_SulfurRoles checks the acceptor split on degree and charge.
func TestTyper_SulfurRoles(t *testing.T) {
	typer := autodock.New()

	thioether := chem.NewAtomData(16)
	thioether.HeavyDeg = 2
	id, _ := typer.Type(thioether)
	assert.Equal(t, int(autodock.SulfurAcceptor), id)

	sulfone := chem.NewAtomData(16)
	sulfone.HeavyDeg = 4
	id, _ = typer.Type(sulfone)
	assert.Equal(t, int(autodock.Sulfur), id)
}

// TestTyper_MetalsAndCatchall verifies the enumerated metals and the
// GenericMetal catch-all for everything outside the table.
func TestTyper_MetalsAndCatchall(t *testing.T) {
	typer := autodock.New()

	cases := map[int]autodock.Type{
		5:  autodock.Boron,
		9:  autodock.Fluorine,
		12: autodock.Magnesium,
		15: autodock.Phosphorus,
		17: autodock.Chlorine,
		20: autodock.Calcium,
		25: autodock.Manganese,
		26: autodock.Iron,
		30: autodock.Zinc,
		35: autodock.Bromine,
		53: autodock.Iodine,
		29: autodock.GenericMetal, // copper is not enumerated
		80: autodock.GenericMetal, // mercury
		2:  autodock.GenericMetal, // helium: unknown to the table
	}
	for anum, want := range cases {
		id, _ := typer.Type(chem.NewAtomData(anum))
		assert.Equal(t, int(want), id, "atomic number %d", anum)
	}
}

// TestTyper_RadiusModes checks XS vs covalent radius emission.
func TestTyper_RadiusModes(t *testing.T) {
	xs := autodock.New()
	cov := autodock.New(autodock.WithCovalentRadius())
	atom := carbon(false, 0)

	_, rXS := xs.Type(atom)
	_, rCov := cov.Type(atom)

	info := xs.Info(autodock.AliphaticCarbonXSHydrophobe)
	assert.Equal(t, info.XSRadius, rXS)
	assert.Equal(t, info.CovalentRadius, rCov)
	assert.NotEqual(t, rXS, rCov)
}

// TestTyper_WithTable injects an alternate constant table and confirms
// classification reads from it.
func TestTyper_WithTable(t *testing.T) {
	table := autodock.DefaultTable()
	table[autodock.AliphaticCarbonXSHydrophobe].XSRadius = 9.9

	typer := autodock.New(autodock.WithTable(table))
	_, radius := typer.Type(carbon(false, 0))
	assert.Equal(t, 9.9, radius)

	// The default table stays untouched.
	_, radius = autodock.New().Type(carbon(false, 0))
	assert.Equal(t, 1.9, radius)
}

// TestTyper_TableInvariants pins the structural invariants of the
// constant table: contiguous ids, one record each, short names ≤ 2 chars.
func TestTyper_TableInvariants(t *testing.T) {
	typer := autodock.New()
	for id := 0; id < typer.NumTypes(); id++ {
		info := typer.Info(autodock.Type(id))
		require.NotEmpty(t, info.Name, "record %d has no name", id)
		assert.LessOrEqual(t, len(info.ShortName), 2, "short name %q too long", info.ShortName)
		assert.GreaterOrEqual(t, info.AtomicNum, 0)
	}
}

// TestTyper_Idempotence confirms repeated classification of the same
// atom yields identical results (no hidden mutable state).
func TestTyper_Idempotence(t *testing.T) {
	typer := autodock.New()
	atom := carbon(true, 1)

	id1, r1 := typer.Type(atom)
	id2, r2 := typer.Type(atom)
	assert.Equal(t, id1, id2)
	assert.Equal(t, r1, r2)
}
