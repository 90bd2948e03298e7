package typing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomforge/atomtype/autodock"
	"github.com/atomforge/atomtype/chem"
	"github.com/atomforge/atomtype/element"
	"github.com/atomforge/atomtype/mapper"
	"github.com/atomforge/atomtype/typing"
)

// Compile-time checks: the concrete types satisfy the contracts and the
// composite is itself an IndexTyper.
var (
	_ typing.IndexTyper  = (*autodock.Typer)(nil)
	_ typing.IndexTyper  = (*element.Typer)(nil)
	_ typing.VectorTyper = (*autodock.VectorTyper)(nil)
	_ typing.Mapper      = (*mapper.Subset)(nil)
	_ typing.Mapper      = (*mapper.File)(nil)
	_ typing.Mapper      = mapper.Identity{}
	_ typing.IndexTyper  = (*typing.MappedTyper[typing.Mapper, typing.IndexTyper])(nil)
)

// TestMappedTyper_CompositionEquation verifies the defining equation:
// mapped.Type(a) == (mapper.MapType(typer.Type(a)), typer radius).
func TestMappedTyper_CompositionEquation(t *testing.T) {
	typer := autodock.New()
	m, err := mapper.NewGroupedSubset([][]int{
		{int(autodock.Hydrogen), int(autodock.PolarHydrogen)},
		{int(autodock.Fluorine), int(autodock.Chlorine), int(autodock.Bromine), int(autodock.Iodine)},
	}, true)
	require.NoError(t, err)

	mapped := typing.NewMappedTyper[typing.Mapper, typing.IndexTyper](m, typer)

	for _, anum := range []int{1, 6, 9, 17, 35, 53, 26} {
		atom := chem.NewAtomData(anum)

		origin, wantRadius := typer.Type(atom)
		gotID, gotRadius := mapped.Type(atom)

		assert.Equal(t, m.MapType(origin), gotID, "atomic number %d", anum)
		assert.Equal(t, wantRadius, gotRadius, "radius passes through unchanged")
	}
}

// TestMappedTyper_NumTypesDelegatesToMapper checks the destination space
// defines the composite's dimensionality.
func TestMappedTyper_NumTypesDelegatesToMapper(t *testing.T) {
	typer := element.New(84)
	m, err := mapper.NewSubset([]int{1, 6, 7, 8}, true)
	require.NoError(t, err)

	mapped := typing.NewMappedTyper[*mapper.Subset, *element.Typer](m, typer)
	assert.Equal(t, 5, mapped.NumTypes())
	assert.Nil(t, mapped.TypeNames(), "subset mappers supply no vocabulary")
}

// TestMappedTyper_IdentityPassThrough verifies a pass-through mapper
// leaves the typer's category space and names visible.
func TestMappedTyper_IdentityPassThrough(t *testing.T) {
	typer := element.New(84)
	mapped := typing.NewMappedTyper[mapper.Identity, *element.Typer](mapper.Identity{}, typer)

	assert.Equal(t, typer.NumTypes(), mapped.NumTypes())
	assert.Equal(t, typer.TypeNames(), mapped.TypeNames())

	id, radius := mapped.Type(chem.NewAtomData(6))
	wantID, wantRadius := typer.Type(chem.NewAtomData(6))
	assert.Equal(t, wantID, id)
	assert.Equal(t, wantRadius, radius)
}

// TestMappedTyper_FileMapperNames verifies the composite exposes the
// file mapper's destination vocabulary.
func TestMappedTyper_FileMapperNames(t *testing.T) {
	typer := autodock.New()
	spec := "Hydrogen PolarHydrogen\nOxygen OxygenXSDonor OxygenXSDonorAcceptor OxygenXSAcceptor\n"
	m, err := mapper.NewFileMapper(strings.NewReader(spec), typer.TypeNames())
	require.NoError(t, err)

	mapped := typing.NewMappedTyper[*mapper.File, *autodock.Typer](m, typer)

	assert.Equal(t, 2, mapped.NumTypes())
	assert.Equal(t, []string{"Hydrogen", "Oxygen"}, mapped.TypeNames())

	hydroxyl := chem.NewAtomData(8)
	hydroxyl.ImplicitH = 1
	id, _ := mapped.Type(hydroxyl)
	assert.Equal(t, 1, id, "all oxygen subtypes fold onto the oxygen channel")

	id, _ = mapped.Type(chem.NewAtomData(6))
	assert.Equal(t, typing.Unmapped, id, "carbon is in no group")
}

// TestMappedTyper_AnyMapperAnyTyper pairs the file mapper with the
// element typer to confirm the composition is concrete-type agnostic.
func TestMappedTyper_AnyMapperAnyTyper(t *testing.T) {
	typer := element.New(84)
	m, err := mapper.NewFileMapper(strings.NewReader("C\nN O\n"), typer.TypeNames())
	require.NoError(t, err)

	mapped := typing.NewMappedTyper[*mapper.File, *element.Typer](m, typer)

	id, _ := mapped.Type(chem.NewAtomData(7))
	assert.Equal(t, 1, id)
	id, _ = mapped.Type(chem.NewAtomData(8))
	assert.Equal(t, 1, id)
	id, _ = mapped.Type(chem.NewAtomData(6))
	assert.Equal(t, 0, id)
}
