package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryNormalized_Defaults(t *testing.T) {
	q := ListQuery{}.Normalized()

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, SortNewest, q.Sort)
	assert.Equal(t, "", q.Role)
	assert.Equal(t, 0, q.Offset())
}

func TestListQueryNormalized_AllRoleSentinel(t *testing.T) {
	q := ListQuery{Role: "All"}.Normalized()
	assert.Equal(t, "", q.Role)

	q = ListQuery{Role: "Backend"}.Normalized()
	assert.Equal(t, "Backend", q.Role)
}

func TestListQueryNormalized_UnknownSortFallsBackToNewest(t *testing.T) {
	for _, sort := range []string{"", "oldest", "EXP_DESC", "banana"} {
		q := ListQuery{Sort: sort}.Normalized()
		assert.Equal(t, SortNewest, q.Sort, "sort %q", sort)
	}

	q := ListQuery{Sort: SortExpDesc}.Normalized()
	assert.Equal(t, SortExpDesc, q.Sort)
}

func TestListQueryNormalized_LimitCap(t *testing.T) {
	q := ListQuery{Limit: 5000}.Normalized()
	assert.Equal(t, MaxLimit, q.Limit)

	q = ListQuery{Page: -3, Limit: -1}.Normalized()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestListQueryOffset(t *testing.T) {
	q := ListQuery{Page: 2, Limit: 10}.Normalized()
	assert.Equal(t, 10, q.Offset())

	q = ListQuery{Page: 3, Limit: 25}.Normalized()
	assert.Equal(t, 50, q.Offset())
}

func TestNewDeveloperPage_Pages(t *testing.T) {
	q := ListQuery{Page: 2, Limit: 10}.Normalized()
	page := NewDeveloperPage(make([]Developer, 10), 25, q)

	assert.Equal(t, 10, page.Count)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages)

	empty := NewDeveloperPage([]Developer{}, 0, q)
	assert.Equal(t, 0, empty.Pages)
}

func TestTechStackUnmarshalJSON_ArrayAndString(t *testing.T) {
	var fromArray TechStack
	require.NoError(t, json.Unmarshal([]byte(`["React","CSS"]`), &fromArray))

	var fromString TechStack
	require.NoError(t, json.Unmarshal([]byte(`"React, CSS"`), &fromString))

	assert.Equal(t, fromArray.Normalize(), fromString.Normalize())
	assert.Equal(t, TechStack{"React", "CSS"}, fromString.Normalize())
}

func TestTechStackNormalize_DropsEmptyPieces(t *testing.T) {
	stack := TechStack{" Go ", "", "  ", "Postgres"}.Normalize()
	assert.Equal(t, TechStack{"Go", "Postgres"}, stack)

	// Idempotent: normalizing an already-normalized stack is a no-op.
	assert.Equal(t, stack, stack.Normalize())
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("All").Valid())
	assert.False(t, Role("backend").Valid())
}
