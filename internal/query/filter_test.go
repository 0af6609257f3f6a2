package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileNilIsNoConstraint(t *testing.T) {
	pred, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, pred)

	var typedNil *StringFilter
	pred, err = Compile(typedNil)
	require.NoError(t, err)
	assert.Nil(t, pred)
}

func TestCompileIsNullIgnoresCriterias(t *testing.T) {
	params := []FilterParam{
		StringFilter{Filter: OpIsNull},
		StringFilter{Filter: OpIsNull, Criterias: []string{"a", "b"}},
		NumberFilter{Filter: OpIsNull, Criterias: []string{"not-a-number"}},
		EnumFilter{Filter: OpIsNull, Criterias: []string{"whatever"}},
	}
	for _, p := range params {
		pred, err := Compile(p)
		require.NoError(t, err)
		assert.Equal(t, &Predicate{Kind: KindIsNull}, pred)
	}
}

func TestCompileStringFilter(t *testing.T) {
	pred, err := Compile(StringFilter{Criterias: []string{"dev", "ops"}})
	require.NoError(t, err)
	assert.Equal(t, &Predicate{Kind: KindIn, Values: []any{"dev", "ops"}}, pred)

	pred, err = Compile(StringFilter{Filter: OpEqual, Criterias: []string{"dev"}})
	require.NoError(t, err)
	assert.Equal(t, KindIn, pred.Kind)

	pred, err = Compile(StringFilter{Filter: OpNot, Criterias: []string{"dev"}})
	require.NoError(t, err)
	assert.Equal(t, &Predicate{Kind: KindNotIn, Values: []any{"dev"}}, pred)
}

func TestCompileTextMatching(t *testing.T) {
	cases := []struct {
		op   Operator
		kind PredicateKind
		want string
	}{
		{OpContains, KindLike, `%go\_50\%%`},
		{OpNotContains, KindNotLike, `%go\_50\%%`},
		{OpBeginsWith, KindLike, `go\_50\%%`},
		{OpEndsWith, KindLike, `%go\_50\%`},
	}
	for _, tc := range cases {
		pred, err := Compile(StringFilter{Filter: tc.op, Criterias: []string{"go_50%"}})
		require.NoError(t, err)
		assert.Equal(t, tc.kind, pred.Kind, tc.op)
		assert.Equal(t, []any{tc.want}, pred.Values, tc.op)
	}
}

func TestCompileNumberFilter(t *testing.T) {
	pred, err := Compile(NumberFilter{Criterias: []string{"30000", "45000.5"}})
	require.NoError(t, err)
	assert.Equal(t, &Predicate{Kind: KindIn, Values: []any{int64(30000), 45000.5}}, pred)

	pred, err = Compile(NumberFilter{Filter: OpNot, Criterias: []string{"1"}})
	require.NoError(t, err)
	assert.Equal(t, &Predicate{Kind: KindNotIn, Values: []any{int64(1)}}, pred)
}

func TestCompileComparisonUsesFirstCriteria(t *testing.T) {
	cases := map[Operator]PredicateKind{
		OpLessThan:        KindLessThan,
		OpLessThanOrEqual: KindLessThanOrEqual,
		OpMoreThan:        KindMoreThan,
		OpMoreThanOrEqual: KindMoreThanOrEqual,
	}
	for op, kind := range cases {
		pred, err := Compile(NumberFilter{Filter: op, Criterias: []string{"40000", "1", "2"}})
		require.NoError(t, err)
		assert.Equal(t, &Predicate{Kind: kind, Values: []any{int64(40000)}}, pred, op)
	}
}

func TestCompileNumberRejectsNonNumeric(t *testing.T) {
	_, err := Compile(NumberFilter{Filter: OpNot, Criterias: []string{"12", "abc"}})
	require.Error(t, err)

	var invalid InvalidCriteriaError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "abc", invalid.Value)

	_, err = Compile(NumberFilter{Criterias: []string{"NaN"}})
	assert.Error(t, err)
}

func TestEnumFilterCompilesLikeString(t *testing.T) {
	f := EnumFilter{Criterias: []string{"internship"}, Allowed: []string{"internship", "fixed"}}
	pred, err := Compile(f)
	require.NoError(t, err)
	assert.Equal(t, &Predicate{Kind: KindIn, Values: []any{"internship"}}, pred)
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, StringFilter{Filter: OpContains, Criterias: []string{"a"}}.Validate())
	assert.NoError(t, StringFilter{Filter: OpIsNull}.Validate())
	assert.NoError(t, NumberFilter{Filter: OpMoreThan, Criterias: []string{"10"}}.Validate())

	assert.Error(t, StringFilter{Criterias: nil}.Validate(), "empty criterias")
	assert.Error(t, StringFilter{Criterias: []string{"a", "a"}}.Validate(), "duplicates")
	assert.Error(t, StringFilter{Filter: OpLessThan, Criterias: []string{"a"}}.Validate(), "numeric operator on string")
	assert.Error(t, NumberFilter{Filter: OpContains, Criterias: []string{"1"}}.Validate(), "text operator on number")
	assert.Error(t, NumberFilter{Criterias: []string{"1", "x"}}.Validate())
	assert.Error(t, EnumFilter{Criterias: []string{"freelance"}, Allowed: []string{"internship"}}.Validate())
	assert.Error(t, EnumFilter{Filter: OpContains, Criterias: []string{"internship"}, Allowed: []string{"internship"}}.Validate())
	assert.Error(t, StringFilter{Filter: "between", Criterias: []string{"a"}}.Validate())
}

func TestNumberFilterRejectsEquivalentCriterias(t *testing.T) {
	for _, criterias := range [][]string{{"1", "1.0"}, {"30000", "3e4"}, {" 5", "5"}} {
		err := NumberFilter{Criterias: criterias}.Validate()
		var fe FilterError
		require.True(t, errors.As(err, &fe), criterias)
		assert.Equal(t, "All criterias's elements must be unique", fe.Msg)
	}
	assert.NoError(t, NumberFilter{Filter: OpNot, Criterias: []string{"1", "1.5"}}.Validate())
}
