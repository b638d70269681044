package cli

import (
	"testing"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramFields_RoundTrip(t *testing.T) {
	p := &domain.Program{ID: "p1", Name: "SwimSafe", Instructors: []string{"Ben Geiler", "Maria Collins"}, StudentCount: 12}
	f := programFieldsFrom(p)
	assert.Equal(t, "Ben Geiler, Maria Collins", f.Instructors)
	assert.Equal(t, "12", f.Students)

	f.Name = "  SwimSafe Plus "
	f.Instructors = "Ben Geiler, , Sam Lee,"
	f.Students = "14"
	require.NoError(t, f.apply(p))
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "SwimSafe Plus", p.Name)
	assert.Equal(t, []string{"Ben Geiler", "Sam Lee"}, p.Instructors)
	assert.Equal(t, 14, p.StudentCount)

	f.Students = "-1"
	assert.Error(t, f.apply(p))
}

func TestProgressFields_Points(t *testing.T) {
	p := &domain.Progress{Name: "Floats", PointValue: 5}
	f := progressFieldsFrom(p)
	assert.Equal(t, "5", f.Points)

	f.Points = ""
	require.NoError(t, f.apply(p))
	assert.Equal(t, 0, p.PointValue)

	f.Points = "many"
	assert.Error(t, f.apply(p))
}

func TestValidators(t *testing.T) {
	assert.Error(t, validateRequired("   "))
	assert.NoError(t, validateRequired("x"))
	assert.NoError(t, validateNonNegativeInt(""))
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.Error(t, validateNonNegativeInt("-3"))
	assert.Error(t, validateNonNegativeInt("3.5"))
}

func TestListCursor(t *testing.T) {
	var c listCursor
	assert.True(t, c.move("up", 3))
	assert.Equal(t, listCursor(0), c)
	c.move("down", 3)
	c.move("j", 3)
	c.move("down", 3)
	assert.Equal(t, listCursor(2), c)
	c.move("home", 3)
	assert.Equal(t, listCursor(0), c)
	c.move("end", 3)
	assert.Equal(t, listCursor(2), c)
	assert.False(t, c.move("x", 3))

	c.clamp(1)
	assert.Equal(t, listCursor(0), c)
	c.clamp(0)
	assert.Equal(t, listCursor(0), c)
}
