package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmsDeletionIsExactAndCaseSensitive(t *testing.T) {
	r := Restaurant{Name: "De Gouden Leeuw"}

	assert.True(t, r.ConfirmsDeletion("De Gouden Leeuw"))
	assert.False(t, r.ConfirmsDeletion("de gouden leeuw"))
	assert.False(t, r.ConfirmsDeletion("De Gouden Leeuw "))
	assert.False(t, r.ConfirmsDeletion(""))
	assert.False(t, Restaurant{}.ConfirmsDeletion(""))
}

func TestServiceFee(t *testing.T) {
	f := FeeConfig{ServiceFeeBps: 250, FixedFeeCents: 10}
	assert.Equal(t, int64(35), f.ServiceFee(1000))
}

func TestTeamMemberRoleFlags(t *testing.T) {
	assert.NoError(t, TeamMember{IsRestaurantAdmin: true}.ValidateRoles())
	assert.NoError(t, TeamMember{IsRestaurantStaff: true}.ValidateRoles())
	assert.ErrorIs(t, TeamMember{}.ValidateRoles(), ErrInvalidRoleFlags)
	assert.ErrorIs(t, TeamMember{IsRestaurantAdmin: true, IsRestaurantStaff: true}.ValidateRoles(), ErrInvalidRoleFlags)
}

func TestPlanTables(t *testing.T) {
	n := 0
	token := func() string { n++; return fmt.Sprintf("tok-%d", n) }

	tables := PlanTables(3, 5, 4, []string{"Bar", " ", "Garden"}, token)

	assert.Len(t, tables, 4)
	assert.Equal(t, 5, tables[0].Number)
	assert.Equal(t, 8, tables[3].Number)
	assert.Equal(t, []string{"Bar", "Garden", "Bar", "Garden"},
		[]string{tables[0].Section, tables[1].Section, tables[2].Section, tables[3].Section})
	assert.Equal(t, "tok-4", tables[3].Token)
	assert.True(t, tables[0].IsActive)
}

func TestNextTableNumberAndLink(t *testing.T) {
	assert.Equal(t, 1, NextTableNumber(nil))
	assert.Equal(t, 13, NextTableNumber([]Table{{Number: 12}, {Number: 3}}))
	assert.Equal(t, "https://order.example.com/r/4/t/abc", TableLink("https://order.example.com/", 4, "abc"))
}

func TestNormalizePage(t *testing.T) {
	p, s := NormalizePage(0, 0)
	assert.Equal(t, 1, p)
	assert.Equal(t, DefaultPageSize, s)

	_, s = NormalizePage(2, 1000)
	assert.Equal(t, MaxPageSize, s)
	assert.Equal(t, 20, PageOffset(3, 10))
}
