package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Path)
	}
	return out
}

func TestValidateEmptyScheduleIsValid(t *testing.T) {
	assert.Empty(t, Validate(Schedule{SchemaVersion: SchemaVersion}))
}

func TestValidateSchemaVersion(t *testing.T) {
	errs := Validate(Schedule{})
	require.Len(t, errs, 1)
	assert.Equal(t, "$.schemaVersion", errs[0].Path)

	errs = Validate(Schedule{SchemaVersion: 7})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unsupported schemaVersion 7")
}

func TestValidateItemFields(t *testing.T) {
	s := Schedule{
		SchemaVersion: SchemaVersion,
		Items: []Item{
			{ID: "", Title: "", Start: MustClockTime("09:00"), End: MustClockTime("10:00")},
			{ID: "b", Title: "B", Start: ClockTime{Hour: 25}, End: MustClockTime("10:00"), Image: "not a url", Subtasks: []string{""}},
		},
	}

	got := paths(Validate(s))
	assert.Contains(t, got, "$.items[0].id")
	assert.Contains(t, got, "$.items[0].title")
	assert.Contains(t, got, "$.items[1].image")
	assert.Contains(t, got, "$.items[1].subtasks[0]")
	assert.Contains(t, got, "$.items[1].startTime")
}

func TestValidateDuplicateIDs(t *testing.T) {
	s := Schedule{
		SchemaVersion: SchemaVersion,
		Items:         []Item{item("a", "00:00", "12:00"), item("a", "12:00", "00:00")},
	}

	errs := Validate(s)
	require.Len(t, errs, 1)
	assert.Equal(t, "$.items", errs[0].Path)
	assert.Equal(t, "item ids must be unique", errs[0].Message)
}

func TestCheckTilingReportsGapsAndOverlaps(t *testing.T) {
	items := []Item{
		item("a", "00:00", "10:00"),
		item("b", "09:30", "12:00"),
		item("c", "13:00", "00:00"),
	}

	errs := CheckTiling(items)
	require.Len(t, errs, 2)
	assert.Equal(t, `overlap 09:30-10:00 is covered by items "a", "b"`, errs[0].Message)
	assert.Equal(t, "gap 12:00-13:00 is not covered by any item", errs[1].Message)
}

func TestCheckTilingEmpty(t *testing.T) {
	errs := CheckTiling(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "gap 00:00-24:00 is not covered by any item", errs[0].Message)
}

func TestCheckStrictTiling(t *testing.T) {
	s := Schedule{SchemaVersion: SchemaVersion, Items: []Item{item("a", "09:00", "10:00")}}

	assert.NoError(t, Check("mem", s, false))

	err := Check("mem", s, true)
	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))
	assert.Len(t, invalid.Errs, 2)
	assert.Contains(t, err.Error(), "invalid schedule: mem\n- $.items: gap 00:00-09:00")
}
